package localstore

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"
)

var ErrInvalid = errors.New("invalid payload frame")

// Codec frames a payload as base64(payload).base64(hmac(payload)) so that
// truncated or hand-edited files read back as invalid instead of feeding
// garbage into the cart.
type Codec struct {
	Secret []byte
}

func NewCodec(secret []byte) *Codec {
	return &Codec{Secret: secret}
}

func (c *Codec) Encode(payload []byte) []byte {
	body := base64.RawURLEncoding.EncodeToString(payload)
	return []byte(body + "." + sign(c.Secret, body))
}

func (c *Codec) Decode(framed []byte) ([]byte, error) {
	parts := strings.Split(string(framed), ".")
	if len(parts) != 2 || parts[0] == "" {
		return nil, ErrInvalid
	}
	if !verify(c.Secret, parts[0], parts[1]) {
		return nil, ErrInvalid
	}
	payload, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return nil, ErrInvalid
	}
	return payload, nil
}

func sign(secret []byte, payload string) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

func verify(secret []byte, payload, sig string) bool {
	return hmac.Equal([]byte(sign(secret, payload)), []byte(sig))
}
