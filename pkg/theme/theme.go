package theme

import (
	"encoding/json"
	"os"
)

// Theme - interfeys mavzusi (localStorage o'rnida lokal faylda saqlanadi)
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

type themeFile struct {
	Theme Theme `json:"theme"`
}

// Load - saqlangan mavzuni o'qish (fayl bo'lmasa yoki buzilgan bo'lsa light)
func Load(path string) Theme {
	data, err := os.ReadFile(path)
	if err != nil {
		return Light
	}

	var tf themeFile
	if err := json.Unmarshal(data, &tf); err != nil {
		return Light
	}
	if tf.Theme != Dark {
		return Light
	}
	return Dark
}

// Save - mavzuni faylga yozish
func Save(path string, t Theme) error {
	data, err := json.Marshal(themeFile{Theme: t})
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Toggle - mavzuni almashtirish
func Toggle(t Theme) Theme {
	if t == Dark {
		return Light
	}
	return Dark
}
