// Package cipher implementa a criptografia simétrica dos tokens de API
// armazenados no banco de dados
package cipher

import (
	"crypto/aes"
	gocipher "crypto/cipher"
	"crypto/rand"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltSize  = 64
	nonceSize = 16
	tagSize   = 16
	keySize   = 32

	// Número de iterações do PBKDF2. Alterar este valor invalida todos os
	// tokens já gravados.
	kdfIterations = 100_000
)

var (
	// ErrMalformedToken indica que o token persistido não está no formato
	// salt:nonce:tag:ciphertext
	ErrMalformedToken = errors.New("token cifrado em formato inválido")

	// ErrAuthentication indica falha na verificação de autenticidade
	// (token adulterado ou master secret incorreto)
	ErrAuthentication = errors.New("falha na autenticação do token cifrado")
)

// Encrypt cifra o texto plano com AES-256-GCM usando uma chave derivada do
// master secret e de um salt aleatório gerado por chamada. Duas chamadas com
// o mesmo texto plano nunca produzem o mesmo token.
func Encrypt(plaintext string, masterSecret string) (string, error) {
	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("erro ao gerar salt: %w", err)
	}

	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("erro ao gerar nonce: %w", err)
	}

	aead, err := newAEAD(masterSecret, salt)
	if err != nil {
		return "", err
	}

	// Seal devolve ciphertext||tag; o tag é separado para compor o formato
	// de armazenamento
	sealed := aead.Seal(nil, nonce, []byte(plaintext), nil)
	ciphertext := sealed[:len(sealed)-tagSize]
	tag := sealed[len(sealed)-tagSize:]

	token := strings.Join([]string{
		hex.EncodeToString(salt),
		hex.EncodeToString(nonce),
		hex.EncodeToString(tag),
		hex.EncodeToString(ciphertext),
	}, ":")

	return token, nil
}

// Decrypt desfaz a cifra de um token no formato salt:nonce:tag:ciphertext.
// Retorna ErrMalformedToken se o formato não for reconhecido e
// ErrAuthentication se o tag não verificar (adulteração ou master secret
// diferente do usado na cifra).
func Decrypt(token string, masterSecret string) (string, error) {
	parts := strings.Split(token, ":")
	if len(parts) != 4 {
		return "", ErrMalformedToken
	}

	salt, err := hex.DecodeString(parts[0])
	if err != nil {
		return "", ErrAuthentication
	}

	nonce, err := hex.DecodeString(parts[1])
	if err != nil || len(nonce) != nonceSize {
		return "", ErrAuthentication
	}

	tag, err := hex.DecodeString(parts[2])
	if err != nil {
		return "", ErrAuthentication
	}

	ciphertext, err := hex.DecodeString(parts[3])
	if err != nil {
		return "", ErrAuthentication
	}

	aead, err := newAEAD(masterSecret, salt)
	if err != nil {
		return "", err
	}

	plaintext, err := aead.Open(nil, nonce, append(ciphertext, tag...), nil)
	if err != nil {
		return "", ErrAuthentication
	}

	return string(plaintext), nil
}

// newAEAD deriva a chave simétrica do master secret com o salt informado e
// monta o AEAD com o tamanho de nonce usado no formato de armazenamento
func newAEAD(masterSecret string, salt []byte) (gocipher.AEAD, error) {
	key := pbkdf2.Key([]byte(masterSecret), salt, kdfIterations, keySize, sha512.New)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("erro ao inicializar a cifra: %w", err)
	}

	aead, err := gocipher.NewGCMWithNonceSize(block, nonceSize)
	if err != nil {
		return nil, fmt.Errorf("erro ao inicializar o modo GCM: %w", err)
	}

	return aead, nil
}
