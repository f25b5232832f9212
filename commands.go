package blackbird

import (
	"fmt"
	"strings"
)

// onOff, protokolün açık/kapalı parametresidir: 1 veya 0.
func onOff(on bool) int {
	if on {
		return 1
	}
	return 0
}

// ─── Sistem Komutları ───────────────────────────────────────────────────────────

// SetPower, cihazı açar veya bekleme moduna alır.
func (c *Client) SetPower(on bool) (string, error) {
	return c.SendSystem(fmt.Sprintf("power %d", onOff(on)))
}

// Power, güç durumunu sorgular.
func (c *Client) Power() (string, error) {
	return c.SendReport("power")
}

// Reboot, cihazı yeniden başlatır.
func (c *Client) Reboot() (string, error) {
	return c.SendSystem("reboot")
}

// Model, cihaz modelini sorgular.
func (c *Client) Model() (string, error) {
	return c.SendReport("type")
}

// MatrixStatus, tüm giriş/çıkış yönlendirmelerinin özetini döner.
func (c *Client) MatrixStatus() (string, error) {
	return c.SendReport("status")
}

// FirmwareVersion, firmware sürümünü sorgular.
func (c *Client) FirmwareVersion() (string, error) {
	return c.SendReport("fw version")
}

// FactoryReset, cihazı fabrika ayarlarına döndürür.
//
// DİKKAT: ağ ayarları da sıfırlanır; cihaz farklı bir adresten açılabilir.
func (c *Client) FactoryReset() (string, error) {
	return c.SendSystem("reset")
}

// SetBeep, tuş sesini açar veya kapatır.
func (c *Client) SetBeep(on bool) (string, error) {
	return c.SendSystem(fmt.Sprintf("beep %d", onOff(on)))
}

// SetButtonLock, ön panel tuş kilidini ayarlar.
func (c *Client) SetButtonLock(on bool) (string, error) {
	return c.SendSystem(fmt.Sprintf("lock %d", onOff(on)))
}

// ButtonLockStatus, tuş kilidi durumunu sorgular.
func (c *Client) ButtonLockStatus() (string, error) {
	return c.SendReport("lock")
}

// SetControlID, RS-232 kontrol kimliğini ayarlar.
func (c *Client) SetControlID(id int) (string, error) {
	return c.SendSystem(fmt.Sprintf("id %d", id))
}

// ─── Bağlantı Durumu ────────────────────────────────────────────────────────────

// InputConnectionStatus, bir girişin kablo bağlantı durumunu sorgular.
// 0 tüm girişler anlamına gelir.
func (c *Client) InputConnectionStatus(input int) (string, error) {
	if err := validateInput(input); err != nil {
		return "", err
	}
	return c.SendReport(fmt.Sprintf("link in %d", input))
}

// OutputConnectionStatus, bir çıkışın kablo bağlantı durumunu sorgular.
// 0 tüm çıkışlar anlamına gelir.
func (c *Client) OutputConnectionStatus(output int) (string, error) {
	if err := validateOutput(output); err != nil {
		return "", err
	}
	return c.SendReport(fmt.Sprintf("link out %d", output))
}

// ─── Preset Komutları ───────────────────────────────────────────────────────────

// SavePreset, mevcut yönlendirmeyi num numaralı preset'e kaydeder.
func (c *Client) SavePreset(num int) (string, error) {
	if err := validatePreset(num); err != nil {
		return "", err
	}
	return c.SendSystem(fmt.Sprintf("save preset %d", num))
}

// LoadPreset, num numaralı preset'i uygular.
func (c *Client) LoadPreset(num int) (string, error) {
	if err := validatePreset(num); err != nil {
		return "", err
	}
	return c.SendSystem(fmt.Sprintf("recall preset %d", num))
}

// ClearPreset, num numaralı preset'i siler.
func (c *Client) ClearPreset(num int) (string, error) {
	if err := validatePreset(num); err != nil {
		return "", err
	}
	return c.SendSystem(fmt.Sprintf("clear preset %d", num))
}

// PresetDetails, num numaralı preset'in içeriğini sorgular.
func (c *Client) PresetDetails(num int) (string, error) {
	if err := validatePreset(num); err != nil {
		return "", err
	}
	return c.SendReport(fmt.Sprintf("prefer %d", num))
}

// AllPresetDetails, 1'den 8'e kadar her preset'i sırayla sorgular ve
// yanıtları birleştirir. Her preset ayrı bir komut turudur; ilk hatada durur.
func (c *Client) AllPresetDetails() (string, error) {
	var sb strings.Builder
	for num := PresetRange.Min; num <= PresetRange.Max; num++ {
		reply, err := c.PresetDetails(num)
		if err != nil {
			return "", fmt.Errorf("preset %d sorgulanamadı: %w", num, err)
		}
		sb.WriteString(reply)
	}
	return sb.String(), nil
}

// ─── Seri Port Ayarları ─────────────────────────────────────────────────────────

// SetBaudRate, cihazın RS-232 hızını değiştirir.
func (c *Client) SetBaudRate(rate BaudRate) (string, error) {
	if err := validateBaudRate(rate); err != nil {
		return "", err
	}
	return c.SendSystem(fmt.Sprintf("baud rate %d", int(rate)))
}

// BaudRate, cihazın RS-232 hızını sorgular.
func (c *Client) BaudRate() (string, error) {
	return c.SendReport("baud rate")
}

// ─── Yönlendirme ve HDMI ────────────────────────────────────────────────────────

// SetInputToOutput, input girişini output çıkışına yönlendirir.
// output 0 ise giriş tüm çıkışlara verilir.
func (c *Client) SetInputToOutput(input, output int) (string, error) {
	if err := validateInput(input); err != nil {
		return "", err
	}
	if err := validateOutput(output); err != nil {
		return "", err
	}
	return c.SendSystem(fmt.Sprintf("in %d av out %d", input, output))
}

// OutputSignalStatus, bir çıkışa hangi girişin verildiğini sorgular.
func (c *Client) OutputSignalStatus(output int) (string, error) {
	if err := validateOutput(output); err != nil {
		return "", err
	}
	return c.SendReport(fmt.Sprintf("av out %d", output))
}

// SetOutputStream, bir çıkışın yayınını açar veya kapatır.
func (c *Client) SetOutputStream(output int, on bool) (string, error) {
	if err := validateOutput(output); err != nil {
		return "", err
	}
	return c.SendSystem(fmt.Sprintf("out %d stream %d", output, onOff(on)))
}

// OutputStreamStatus, bir çıkışın yayın durumunu sorgular.
func (c *Client) OutputStreamStatus(output int) (string, error) {
	if err := validateOutput(output); err != nil {
		return "", err
	}
	return c.SendReport(fmt.Sprintf("out %d stream", output))
}

// SetOutputScaler, bir HDMI çıkışının ölçekleme modunu ayarlar.
func (c *Client) SetOutputScaler(output int, mode ScalerMode) (string, error) {
	if err := validateOutput(output); err != nil {
		return "", err
	}
	if err := validateScaler(mode); err != nil {
		return "", err
	}
	return c.SendSystem(fmt.Sprintf("hdmi %d scaler %d", output, int(mode)))
}

// OutputScaler, bir HDMI çıkışının ölçekleme modunu sorgular.
func (c *Client) OutputScaler(output int) (string, error) {
	if err := validateOutput(output); err != nil {
		return "", err
	}
	return c.SendReport(fmt.Sprintf("hdmi %d scaler", output))
}

// SetOutputHDCP, bir HDMI çıkışında HDCP'yi açar veya kapatır.
func (c *Client) SetOutputHDCP(output int, on bool) (string, error) {
	if err := validateOutput(output); err != nil {
		return "", err
	}
	return c.SendSystem(fmt.Sprintf("hdmi %d hdcp %d", output, onOff(on)))
}

// OutputHDCP, bir HDMI çıkışının HDCP durumunu sorgular.
func (c *Client) OutputHDCP(output int) (string, error) {
	if err := validateOutput(output); err != nil {
		return "", err
	}
	return c.SendReport(fmt.Sprintf("hdmi %d hdcp", output))
}

// SetOutputARC, bir HDMI çıkışında ARC'yi açar veya kapatır.
func (c *Client) SetOutputARC(output int, on bool) (string, error) {
	if err := validateOutput(output); err != nil {
		return "", err
	}
	return c.SendSystem(fmt.Sprintf("hdmi %d arc %d", output, onOff(on)))
}

// OutputARC, bir HDMI çıkışının ARC durumunu sorgular.
func (c *Client) OutputARC(output int) (string, error) {
	if err := validateOutput(output); err != nil {
		return "", err
	}
	return c.SendReport(fmt.Sprintf("hdmi %d arc", output))
}

// ─── EDID ───────────────────────────────────────────────────────────────────────

// InputEDIDStatus, bir girişe atanmış EDID profilini sorgular.
func (c *Client) InputEDIDStatus(input int) (string, error) {
	if err := validateInput(input); err != nil {
		return "", err
	}
	return c.SendReport(fmt.Sprintf("edid in %d", input))
}

// OutputEDIDStatus, bir HDMI çıkışına bağlı ekranın EDID verisini sorgular.
func (c *Client) OutputEDIDStatus(output int) (string, error) {
	if err := validateOutput(output); err != nil {
		return "", err
	}
	return c.SendReport(fmt.Sprintf("edid data hdmi %d", output))
}

// SetInputEDID, bir girişe edidID numaralı EDID profilini atar (1-23).
func (c *Client) SetInputEDID(input, edidID int) (string, error) {
	if err := validateInput(input); err != nil {
		return "", err
	}
	if err := validateEDID(edidID); err != nil {
		return "", err
	}
	return c.SendSystem(fmt.Sprintf("edid in %d from %d", input, edidID))
}

// ─── Ağ Yapılandırması ──────────────────────────────────────────────────────────
//
// DİKKAT: Bu komutlar cihazın adresini değiştirebilir. Değişiklikler
// RebootNetwork çağrılana kadar uygulanmaz.

// IPConfig, tüm ağ ayarlarını sorgular.
func (c *Client) IPConfig() (string, error) {
	return c.SendReport("ipconfig")
}

// MACAddress, cihazın MAC adresini sorgular.
func (c *Client) MACAddress() (string, error) {
	return c.SendReport("mac addr")
}

// SetIPMode, statik IP veya DHCP modunu seçer.
func (c *Client) SetIPMode(mode IPMode) (string, error) {
	if err := validateIPMode(mode); err != nil {
		return "", err
	}
	return c.SendSystem(fmt.Sprintf("ip mode %d", int(mode)))
}

// IPMode, IP modunu sorgular.
func (c *Client) IPMode() (string, error) {
	return c.SendReport("ip mode")
}

// SetIPAddress, statik IPv4 adresini ayarlar.
func (c *Client) SetIPAddress(addr string) (string, error) {
	if err := validateIPv4("ip_addr", addr); err != nil {
		return "", err
	}
	return c.SendSystem("ip addr " + addr)
}

// IPAddress, IP adresini sorgular.
func (c *Client) IPAddress() (string, error) {
	return c.SendReport("ip addr")
}

// SetSubnetMask, alt ağ maskesini ayarlar.
func (c *Client) SetSubnetMask(mask string) (string, error) {
	if err := validateIPv4("subnet_mask", mask); err != nil {
		return "", err
	}
	return c.SendSystem("subnet " + mask)
}

// SubnetMask, alt ağ maskesini sorgular.
func (c *Client) SubnetMask() (string, error) {
	return c.SendReport("subnet")
}

// SetGateway, varsayılan ağ geçidini ayarlar.
func (c *Client) SetGateway(gateway string) (string, error) {
	if err := validateIPv4("gateway", gateway); err != nil {
		return "", err
	}
	return c.SendSystem("gateway " + gateway)
}

// Gateway, varsayılan ağ geçidini sorgular.
func (c *Client) Gateway() (string, error) {
	return c.SendReport("gateway")
}

// SetTCPPort, kontrol protokolünün TCP portunu değiştirir.
func (c *Client) SetTCPPort(port int) (string, error) {
	if err := validatePort(port); err != nil {
		return "", err
	}
	return c.SendSystem(fmt.Sprintf("tcp/ip port %d", port))
}

// TCPPort, kontrol protokolünün TCP portunu sorgular.
func (c *Client) TCPPort() (string, error) {
	return c.SendReport("tcp/ip port")
}

// SetTelnetPort, telnet portunu değiştirir.
func (c *Client) SetTelnetPort(port int) (string, error) {
	if err := validatePort(port); err != nil {
		return "", err
	}
	return c.SendSystem(fmt.Sprintf("telnet port %d", port))
}

// TelnetPort, telnet portunu sorgular.
func (c *Client) TelnetPort() (string, error) {
	return c.SendReport("telnet port")
}

// RebootNetwork, ağ modülünü yeniden başlatarak bekleyen ağ ayarlarını uygular.
func (c *Client) RebootNetwork() (string, error) {
	return c.SendSystem("net reboot")
}
