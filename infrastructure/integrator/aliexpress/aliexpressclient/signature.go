package aliexpressclient

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
)

// GenerateSignature calcula a assinatura HMAC-SHA256 exigida pela API do
// AliExpress: parâmetros ordenados por chave, pares chave+valor concatenados
// sem delimitador e digest em hexadecimal maiúsculo. O campo "sign" nunca
// entra no cálculo.
func GenerateSignature(secret string, params map[string]string) string {
	keys := make([]string, 0, len(params))
	for key := range params {
		if key == "sign" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var concatenated strings.Builder
	for _, key := range keys {
		concatenated.WriteString(key)
		concatenated.WriteString(params[key])
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(concatenated.String()))

	return strings.ToUpper(hex.EncodeToString(mac.Sum(nil)))
}
