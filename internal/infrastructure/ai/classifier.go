package ai

import (
	"context"
	"fmt"
	"strings"
)

// ApprovedMarker is the sentinel the model is instructed to emit as the
// final line when the candidate matches the profile.
const ApprovedMarker = "✅ Apto"

// rubricPrompt is the fixed eligibility profile every CV is evaluated
// against. It is a deployment constant, not configurable per request.
const rubricPrompt = `
Este es el contenido de un currículum vitae de una persona que quiere postular a nuestra empresa:

✅ CRITERIOS PARA SER APTO:
- Profesión: Licenciada en Arquitectura
- Experiencia: Al menos 5 años en proyectos residenciales y espacios públicos
- Experiencia adicional: Asistente de proyecto en Urbanlab 3 años
- Habilidades: Diseño arquitectónico y urbanismo, SketchUp, normativas, comunicación con clientes
- Idioma: Inglés básico

Analiza el siguiente CV textual y responde si corresponde exactamente a este perfil. Al no tener estas caracteristicas, marcalo como ❌ No apto.

Resume brevemente los motivos (3-5 líneas). Al final responde SOLO con:

✅ Apto
❌ No apto

CV:
%s
`

// Classifier evaluates extracted CV text against the fixed rubric.
type Classifier interface {
	Classify(ctx context.Context, cvText string) (string, error)
}

// EligibilityClassifier implements Classifier on top of a ChatCompleter.
type EligibilityClassifier struct {
	completer ChatCompleter
}

// NewEligibilityClassifier creates a classifier backed by the given model client.
func NewEligibilityClassifier(completer ChatCompleter) *EligibilityClassifier {
	return &EligibilityClassifier{completer: completer}
}

// Classify sends the CV text with the rubric and returns the model's
// raw verdict text.
func (c *EligibilityClassifier) Classify(ctx context.Context, cvText string) (string, error) {
	return c.completer.Complete(ctx, fmt.Sprintf(rubricPrompt, cvText))
}

// IsApproved reports whether a verdict text signals approval: the
// trimmed response must end with the exact approved marker.
func IsApproved(result string) bool {
	return strings.HasSuffix(strings.TrimSpace(result), ApprovedMarker)
}
