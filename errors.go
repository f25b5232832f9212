package blackbird

import (
	"errors"
	"fmt"
)

// ErrEmptyReply, WithEmptyReplyError etkinken cihazın zaman aşımı içinde
// hiç veri göndermediğini bildirir.
var ErrEmptyReply = errors.New("cihazdan yanıt gelmedi")

// ValidationError, bir parametrenin tipinin veya aralığının hatalı olduğunu
// bildirir. Herhangi bir I/O yapılmadan önce döner.
type ValidationError struct {
	// Param, hatalı parametrenin adıdır (ör. "preset", "port").
	Param string
	// Value, reddedilen değerin metin halidir.
	Value string
	// Reason, geçerli aralığı veya kuralı anlatır (ör. "1-8 aralığında olmalı").
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("geçersiz %s değeri %q: %s", e.Param, e.Value, e.Reason)
}

// StateError, bağlantının o anki durumunda geçersiz bir işlemi bildirir.
type StateError struct {
	Op    string
	State State
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%s işlemi %s durumunda yapılamaz", e.Op, e.State)
}

// ConnectionError, bağlantı kurulurken (dial veya karşılama okuması)
// oluşan hatadır.
type ConnectionError struct {
	Addr string
	Err  error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("%s adresine bağlanılamadı: %v", e.Addr, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// TransportError, kurulu bir bağlantıda yazma veya okuma hatasıdır.
// Bu hatadan sonra bağlantı StateBroken durumuna geçer.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s hatası: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError, yanıtta UTF-8 olarak çözülemeyen baytlar olduğunu bildirir.
// Partial, hatalı parçadan önce başarıyla çözülen metni taşır.
type DecodeError struct {
	Partial string
	Bytes   []byte
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("yanıt UTF-8 olarak çözülemedi (% x)", e.Bytes)
}
