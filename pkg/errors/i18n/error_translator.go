package i18n

import (
	"embed" // derleme zamanında dosyayı gömülü olarak ekler
	"encoding/json"
	"fmt"
	"sync"
)

const DefaultLocale = "en"

//go:embed *.json
var i18nFiles embed.FS

var (
	mu       sync.RWMutex
	messages map[string]string
)

func Load(locale string) error {
	filename := locale + ".json"

	data, err := i18nFiles.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read embedded i18n file %s: %w", filename, err)
	}

	loaded := make(map[string]string)
	if err := json.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to parse i18n file %s: %w", filename, err)
	}

	mu.Lock()
	messages = loaded
	mu.Unlock()
	return nil
}

// T returns the message for code, loading the default locale on first use.
func T(code string) string {
	mu.RLock()
	loaded := messages
	mu.RUnlock()

	if loaded == nil {
		if err := Load(DefaultLocale); err != nil {
			return code
		}
		mu.RLock()
		loaded = messages
		mu.RUnlock()
	}

	if msg, ok := loaded[code]; ok {
		return msg
	}
	return code // fallback
}
