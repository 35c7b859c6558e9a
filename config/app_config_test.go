package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// MockPreferences implements fyne.Preferences for testing
type MockPreferences struct {
	data map[string]interface{}
}

func NewMockPreferences() *MockPreferences {
	return &MockPreferences{
		data: make(map[string]interface{}),
	}
}

func lookup[T any](m *MockPreferences, key string, fallback T) T {
	val, ok := m.data[key]
	if !ok {
		return fallback
	}
	return val.(T)
}

func (m *MockPreferences) Bool(key string) bool { return lookup(m, key, false) }
func (m *MockPreferences) BoolWithFallback(key string, fallback bool) bool {
	return lookup(m, key, fallback)
}
func (m *MockPreferences) SetBool(key string, value bool) { m.data[key] = value }

func (m *MockPreferences) Float(key string) float64 { return lookup(m, key, 0.0) }
func (m *MockPreferences) FloatWithFallback(key string, fallback float64) float64 {
	return lookup(m, key, fallback)
}
func (m *MockPreferences) SetFloat(key string, value float64) { m.data[key] = value }

func (m *MockPreferences) Int(key string) int { return lookup(m, key, 0) }
func (m *MockPreferences) IntWithFallback(key string, fallback int) int {
	return lookup(m, key, fallback)
}
func (m *MockPreferences) SetInt(key string, value int) { m.data[key] = value }

func (m *MockPreferences) String(key string) string { return lookup(m, key, "") }
func (m *MockPreferences) StringWithFallback(key string, fallback string) string {
	return lookup(m, key, fallback)
}
func (m *MockPreferences) SetString(key string, value string) { m.data[key] = value }

func (m *MockPreferences) StringList(key string) []string { return lookup(m, key, []string{}) }
func (m *MockPreferences) StringListWithFallback(key string, fallback []string) []string {
	return lookup(m, key, fallback)
}
func (m *MockPreferences) SetStringList(key string, value []string) { m.data[key] = value }

func (m *MockPreferences) BoolList(key string) []bool { return lookup(m, key, []bool{}) }
func (m *MockPreferences) BoolListWithFallback(key string, fallback []bool) []bool {
	return lookup(m, key, fallback)
}
func (m *MockPreferences) SetBoolList(key string, value []bool) { m.data[key] = value }

func (m *MockPreferences) FloatList(key string) []float64 { return lookup(m, key, []float64{}) }
func (m *MockPreferences) FloatListWithFallback(key string, fallback []float64) []float64 {
	return lookup(m, key, fallback)
}
func (m *MockPreferences) SetFloatList(key string, value []float64) { m.data[key] = value }

func (m *MockPreferences) IntList(key string) []int { return lookup(m, key, []int{}) }
func (m *MockPreferences) IntListWithFallback(key string, fallback []int) []int {
	return lookup(m, key, fallback)
}
func (m *MockPreferences) SetIntList(key string, value []int) { m.data[key] = value }

func (m *MockPreferences) RemoveValue(key string) {
	delete(m.data, key)
}

func (m *MockPreferences) AddChangeListener(func()) {}

func (m *MockPreferences) ChangeListeners() []func() {
	return []func(){}
}

func TestAppConfig(t *testing.T) {
	prefs := NewMockPreferences()
	cfg := NewAppConfig(prefs)

	t.Run("DefaultWidth", func(t *testing.T) {
		assert.Equal(t, DefaultWidth, cfg.GetDefaultWidth())

		cfg.SetDefaultWidth(160)
		assert.Equal(t, 160, cfg.GetDefaultWidth())

		// Values below the minimum are raised on read
		cfg.SetDefaultWidth(3)
		assert.Equal(t, MinWidth, cfg.GetDefaultWidth())
	})

	t.Run("Invert", func(t *testing.T) {
		assert.False(t, cfg.GetInvert())

		cfg.SetInvert(true)
		assert.True(t, cfg.GetInvert())

		cfg.SetInvert(false)
		assert.False(t, cfg.GetInvert())
	})

	t.Run("Theme", func(t *testing.T) {
		assert.Equal(t, ThemeSystem, cfg.GetTheme())

		cfg.SetTheme(ThemeDark)
		assert.Equal(t, ThemeDark, cfg.GetTheme())

		cfg.SetTheme(ThemeLight)
		assert.Equal(t, ThemeLight, cfg.GetTheme())
	})

	t.Run("LastDir", func(t *testing.T) {
		assert.Empty(t, cfg.GetLastDir())

		cfg.SetLastDir("/home/user/Pictures")
		assert.Equal(t, "/home/user/Pictures", cfg.GetLastDir())
	})

	t.Run("Reset", func(t *testing.T) {
		cfg.SetDefaultWidth(200)
		cfg.SetInvert(true)
		cfg.SetTheme(ThemeDark)
		cfg.SetLastDir("/tmp")

		cfg.Reset()

		assert.Equal(t, DefaultWidth, cfg.GetDefaultWidth())
		assert.False(t, cfg.GetInvert())
		assert.Equal(t, ThemeSystem, cfg.GetTheme())
		assert.Empty(t, cfg.GetLastDir())
		assert.Empty(t, prefs.data)
	})
}
