package propiedades

import (
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var codigoPattern = regexp.MustCompile(`^[A-NP-Z1-9]{6}$`)

func neverExists(string) (bool, error) {
	return false, nil
}

func alwaysExists(string) (bool, error) {
	return true, nil
}

func TestGenerateCodigo(t *testing.T) {
	for i := 0; i < 1000; i++ {
		codigo := generateCodigo()
		if !codigoPattern.MatchString(codigo) {
			t.Fatal("generated codigo outside the alphabet:", codigo)
		}
	}
}

func TestAllocateCodigoGenerated(t *testing.T) {
	codigo, err := allocateCodigo("", neverExists)
	assert.NoError(t, err)
	assert.Regexp(t, codigoPattern, codigo)
}

func TestAllocateCodigoCandidate(t *testing.T) {
	codigo, err := allocateCodigo("ZN1001", neverExists)
	assert.NoError(t, err)
	assert.Equal(t, "ZN1001", codigo)
}

func TestAllocateCodigoCandidateTaken(t *testing.T) {
	attempts := 0
	_, err := allocateCodigo("ZN1001", func(string) (bool, error) {
		attempts++
		return true, nil
	})
	var enUso ErrCodigoEnUso
	if !errors.As(err, &enUso) {
		t.Fatal("expected ErrCodigoEnUso, got:", err)
	}
	assert.Equal(t, "ZN1001", enUso.Codigo)
	// a taken client-supplied code fails immediately, there is no retry
	assert.Equal(t, 1, attempts)
}

func TestAllocateCodigoRetriesOnCollision(t *testing.T) {
	attempts := 0
	codigo, err := allocateCodigo("", func(string) (bool, error) {
		attempts++
		return attempts < 3, nil
	})
	assert.NoError(t, err)
	assert.Regexp(t, codigoPattern, codigo)
	assert.Equal(t, 3, attempts)
}

func TestAllocateCodigoExhausted(t *testing.T) {
	attempts := 0
	_, err := allocateCodigo("", func(string) (bool, error) {
		attempts++
		return true, nil
	})
	assert.Equal(t, errCodigoAgotado, err)
	assert.Equal(t, maxCodigoAttempts, attempts)
}

func TestAllocateCodigoStoreError(t *testing.T) {
	boom := errors.New("store is down")
	_, err := allocateCodigo("", func(string) (bool, error) {
		return false, boom
	})
	assert.Equal(t, boom, err)
}
