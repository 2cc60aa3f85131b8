// configs/configs_test.go
package configs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppPortDefault(t *testing.T) {
	t.Setenv("APP_PORT", "")
	assert.Equal(t, "3000", AppPort())
}

func TestAppPortFromEnv(t *testing.T) {
	t.Setenv("APP_PORT", "8080")
	assert.Equal(t, "8080", AppPort())
}

// AppPort çıplak portu döndürmeli; ":" öneki çağıran tarafta eklenir.
// Aksi halde dinleme adresi "::3000" olur ve tcp4 listener bunu reddeder.
func TestAppPortHasNoColonPrefix(t *testing.T) {
	t.Setenv("APP_PORT", "3000")
	port := AppPort()
	assert.False(t, strings.HasPrefix(port, ":"))
	assert.Equal(t, ":3000", ":"+port)
}
