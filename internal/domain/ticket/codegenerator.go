package ticket

import (
	"context"
	"fmt"
	"math/rand/v2"
)

// CodePrefix precedes the five random digits in every ticket code.
const CodePrefix = "TIC-"

type CodeGenerator interface {
	Generate(ctx context.Context) (string, error)
}

// RandomCodeGenerator produces codes of the form TIC-NNNNN with five random
// digits. Uniqueness is enforced by the unique index on the tickets table;
// callers retry on collision.
type RandomCodeGenerator struct{}

func NewRandomCodeGenerator() *RandomCodeGenerator {
	return &RandomCodeGenerator{}
}

func (g *RandomCodeGenerator) Generate(ctx context.Context) (string, error) {
	return fmt.Sprintf("%s%05d", CodePrefix, rand.IntN(90000)+10000), nil
}
