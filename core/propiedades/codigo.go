package propiedades

import (
	"fmt"
	"math/rand/v2"
)

// codigoAlphabet is the alphabet for generated property codes. It leaves out
// the letter O and the digit 0, the two are too easy to confuse when codes
// are read out loud or printed on a sign.
const codigoAlphabet = "ABCDEFGHIJKLMNPQRSTUVWXYZ123456789"

const codigoLength = 6

// maxCodigoAttempts caps the collision retry loop for generated codes, so
// that allocation always terminates.
const maxCodigoAttempts = 5

// ErrCodigoEnUso is returned when a client-supplied code already exists.
type ErrCodigoEnUso struct {
	Codigo string
}

func (e ErrCodigoEnUso) Error() string {
	return fmt.Sprintf("El código %s ya existe.", e.Codigo)
}

// errCodigoAgotado is returned when no free code was found after
// maxCodigoAttempts generated candidates.
var errCodigoAgotado = fmt.Errorf("no se pudo generar un identificador único, intente nuevamente")

func generateCodigo() string {
	code := make([]byte, codigoLength)
	for i := range code {
		code[i] = codigoAlphabet[rand.IntN(len(codigoAlphabet))]
	}
	return string(code)
}

// allocateCodigo returns a code that was free at check time. If candidate is
// non-empty it is the client's choice: it is either free and returned as-is,
// or allocation fails immediately with ErrCodigoEnUso. Without a candidate,
// codes are generated until a free one is found, up to maxCodigoAttempts.
//
// The existence check and the later insert are two separate store calls, so
// a concurrent create can still take the code in between. The store's
// primary key constraint is the final arbiter, Insert reports that case as
// ErrCodigoEnUso as well.
func allocateCodigo(candidate string, exists func(codigo string) (bool, error)) (string, error) {
	if candidate != "" {
		taken, err := exists(candidate)
		if err != nil {
			return "", err
		}
		if taken {
			return "", ErrCodigoEnUso{Codigo: candidate}
		}
		return candidate, nil
	}

	for attempt := 0; attempt < maxCodigoAttempts; attempt++ {
		codigo := generateCodigo()
		taken, err := exists(codigo)
		if err != nil {
			return "", err
		}
		if !taken {
			return codigo, nil
		}
	}
	return "", errCodigoAgotado
}
