package security

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

const (
	totpPeriod = 30
	// Um passo de tolerância para absorver clock skew entre cliente e
	// servidor. Códigos já usados não são rastreados: dentro da janela um
	// código pode ser reapresentado.
	totpSkew = 1

	qrImageSize = 256
)

// TOTPManager gera segredos compartilhados e valida códigos TOTP
type TOTPManager struct {
	issuer string
}

// NewTOTPManager cria um novo TOTPManager com o issuer exibido no autenticador
func NewTOTPManager(issuer string) *TOTPManager {
	return &TOTPManager{issuer: issuer}
}

// GenerateSecret gera um novo segredo para a conta e a URL de provisionamento
func (m *TOTPManager) GenerateSecret(accountName string) (secret, provisioningURL string, err error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      m.issuer,
		AccountName: accountName,
	})
	if err != nil {
		return "", "", err
	}
	return key.Secret(), key.URL(), nil
}

// QRCodeDataURI renderiza a URL de provisionamento como um PNG em data URI
func (m *TOTPManager) QRCodeDataURI(provisioningURL string) (string, error) {
	key, err := otp.NewKeyFromURL(provisioningURL)
	if err != nil {
		return "", err
	}

	img, err := key.Image(qrImageSize, qrImageSize)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// Verify valida um código contra o segredo, tolerando um passo adjacente
func (m *TOTPManager) Verify(secret, code string) bool {
	return m.VerifyAt(secret, code, time.Now())
}

// VerifyAt valida um código em um instante específico (útil em testes)
func (m *TOTPManager) VerifyAt(secret, code string, at time.Time) bool {
	valid, err := totp.ValidateCustom(code, secret, at.UTC(), totp.ValidateOpts{
		Period:    totpPeriod,
		Skew:      totpSkew,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
	return err == nil && valid
}
