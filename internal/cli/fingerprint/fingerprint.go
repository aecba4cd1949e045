// Package fingerprint строит грубый идентификатор устройства для анонимных постов.
// Значение не секретно и не уникально: оно лишь позволяет серверу отличать
// авторов для rate limit и реакций.
package fingerprint

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"
)

// Length — длина fingerprint в hex-символах.
const Length = 32

// Signals — сигналы устройства, из которых складывается fingerprint.
type Signals struct {
	DeviceID  string
	UserAgent string
	Timezone  string
}

// Store хранит постоянный device id в файле.
type Store struct {
	Path string
}

// DeviceID читает device id из файла, при отсутствии создаёт новый.
func (s Store) DeviceID() (string, error) {
	if s.Path == "" {
		return "", errors.New("empty fingerprint file path")
	}
	b, err := os.ReadFile(s.Path)
	if err == nil {
		if id := strings.TrimSpace(string(b)); id != "" {
			return id, nil
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("read device id: %w", err)
	}

	id := uuid.NewString()
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return "", fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(s.Path, []byte(id), 0o600); err != nil {
		return "", fmt.Errorf("write device id: %w", err)
	}
	return id, nil
}

// Reset удаляет сохранённый device id; следующий вызов DeviceID создаст новый.
func (s Store) Reset() error {
	if err := os.Remove(s.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// CurrentSignals собирает сигналы текущего процесса.
func CurrentSignals(s Store) (Signals, error) {
	id, err := s.DeviceID()
	if err != nil {
		return Signals{}, err
	}
	return Signals{
		DeviceID:  id,
		UserAgent: "sicli/" + runtime.GOOS + "/" + runtime.GOARCH,
		Timezone:  time.Local.String(),
	}, nil
}

// Compute хэширует сигналы blake2b-256 и берёт первые 32 hex-символа.
func Compute(sig Signals) string {
	sum := blake2b.Sum256([]byte(strings.Join([]string{sig.DeviceID, sig.UserAgent, sig.Timezone}, "|")))
	return hex.EncodeToString(sum[:])[:Length]
}

// Generate возвращает fingerprint этого устройства.
func Generate(s Store) (string, error) {
	sig, err := CurrentSignals(s)
	if err != nil {
		return "", err
	}
	return Compute(sig), nil
}
