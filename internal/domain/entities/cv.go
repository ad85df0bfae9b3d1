package entities

import (
	"time"

	"github.com/google/uuid"
)

// Eligibility verdict labels stored in the cv_statuses lookup table.
const (
	CVStatusApto   = "Apto"
	CVStatusNoApto = "No Apto"
)

// CVStatus is a lazily created lookup row; names are unique.
type CVStatus struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// CV is an application record. It references exactly one owner and one
// status and is immutable after creation.
type CV struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	StatusID   uuid.UUID `json:"status_id"`
	FilePath   string    `json:"file_path"`
	IAResult   string    `json:"ia_result"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// IntakeInput carries the applicant-supplied form fields of a
// submission. The file itself travels separately as a named stream.
type IntakeInput struct {
	Usuario         string `form:"usuario" binding:"required"`
	FechaNacimiento string `form:"fecha_nacimiento" binding:"required"`
	Nombres         string `form:"nombres" binding:"required"`
	Apellidos       string `form:"apellidos" binding:"required"`
	Correo          string `form:"correo" binding:"required"`
	Celular         string `form:"celular" binding:"required"`
	DNI             string `form:"dni" binding:"required"`
}

// IntakeResult is the submission response payload
type IntakeResult struct {
	Usuario     string `json:"usuario"`
	Estado      string `json:"estado"`
	RutaEnBlob  string `json:"ruta_en_blob"`
	ResultadoIA string `json:"resultado_ia"`
}

// CVDetail is the payload for /cvs/detalle/:id
type CVDetail struct {
	Nombre      string `json:"nombre"`
	CVPath      string `json:"cv_path"`
	ResultadoIA string `json:"resultado_ia"`
}

// CVWithUser is a CV row joined to its owner, returned by the
// status-filtered listings.
type CVWithUser struct {
	CVID       uuid.UUID `json:"cv_id"`
	FilePath   string    `json:"file_path"`
	UploadedAt time.Time `json:"uploaded_at"`
	UserID     uuid.UUID `json:"user_id"`
	Email      string    `json:"email"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
}
