package blackbird

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ─── Komut Zarfları ─────────────────────────────────────────────────────────────
//
// Blackbird kontrol protokolü metin tabanlıdır ve yanıtlar için uzunluk
// alanı veya sonlandırıcı yoktur. İki tür komut vardır:
//
//   s <gövde>!   sistem komutu (cihaz durumunu değiştirir)
//   r <gövde>!   rapor komutu (cihaz durumunu sorgular)
//
// Yanıtın bittiği, cihazın bir zaman aşımı süresi boyunca sessiz
// kalmasından anlaşılır (bkz. Transport.SendLine).

const (
	systemEnvelope = "s %s!"
	reportEnvelope = "r %s!"
)

// FormatSystem, gövdeyi sistem komutu zarfına sarar.
// Gövde içeriği doğrulanmaz.
//
//	blackbird.FormatSystem("power 1") // "s power 1!"
func FormatSystem(body string) string {
	return fmt.Sprintf(systemEnvelope, body)
}

// FormatReport, gövdeyi rapor komutu zarfına sarar.
//
//	blackbird.FormatReport("status") // "r status!"
func FormatReport(body string) string {
	return fmt.Sprintf(reportEnvelope, body)
}

// ─── Yanıt Çözme ────────────────────────────────────────────────────────────────

// replyDecoder, yanıtı parça parça UTF-8 olarak çözer.
//
// Her parça ayrı doğrulanır; böylece hatalı bir parça daha önce çözülen
// metni kaybettirmez. TCP segment sınırında bölünmüş çok baytlı bir
// karakter, sonraki parçaya taşınır.
//
// İlk hatadan sonra gelen parçalar yalnızca sayılır: okuma döngüsü akışı
// hizalı tutmak için sessizlik gelene kadar devam eder.
type replyDecoder struct {
	text    strings.Builder
	pending []byte
	err     *DecodeError
	chunks  int
	bytes   int
}

func (d *replyDecoder) feed(chunk []byte) {
	d.chunks++
	d.bytes += len(chunk)
	if d.err != nil {
		return
	}

	data := chunk
	if len(d.pending) > 0 {
		data = append(d.pending, chunk...)
		d.pending = nil
	}

	cut := completeRunes(data)
	if !utf8.Valid(data[:cut]) {
		d.err = &DecodeError{
			Partial: d.text.String(),
			Bytes:   append([]byte(nil), data...),
		}
		return
	}

	d.text.Write(data[:cut])
	if cut < len(data) {
		d.pending = append([]byte(nil), data[cut:]...)
	}
}

// truncate, yanıt sınırı dolduğunda çağrılır: yarım kalmış karakter atılır,
// metin son tam karakterde kesilir.
func (d *replyDecoder) truncate() {
	d.pending = nil
}

// finish, toplanan metni döner. Sessizlik geldiğinde hâlâ yarım kalmış
// bir karakter varsa bu da çözme hatasıdır.
func (d *replyDecoder) finish() (string, error) {
	if d.err != nil {
		return "", d.err
	}
	if len(d.pending) > 0 {
		return "", &DecodeError{Partial: d.text.String(), Bytes: d.pending}
	}
	return d.text.String(), nil
}

// completeRunes, data'nın sonunda yarım kalmış bir UTF-8 dizisi varsa onun
// başladığı indeksi, yoksa len(data) döner.
func completeRunes(data []byte) int {
	for i := len(data) - 1; i >= 0 && i > len(data)-utf8.UTFMax; i-- {
		if utf8.RuneStart(data[i]) {
			if !utf8.FullRune(data[i:]) {
				return i
			}
			break
		}
	}
	return len(data)
}
