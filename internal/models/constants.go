package models

// ============================================================================
// PIPELINE STAGES
// ============================================================================

// Column IDs of the recruiting pipeline, in display order
const (
	StageNuevos            = "nuevos"
	StageRevisionCV        = "revision-cv"
	StagePreseleccion      = "preseleccion"
	StageEntrevistaRRHH    = "entrevista-rrhh"
	StagePruebaTecnica     = "prueba-tecnica"
	StageEntrevistaTecnica = "entrevista-tecnica"
	StageEntrevistaFinal   = "entrevista-final"
	StageReferencias       = "referencias"
	StageOfertaEnviada     = "oferta-enviada"
	StageOfertaAceptada    = "oferta-aceptada"
	StageContratado        = "contratado"
	StageDescartado        = "descartado"
)

// Stage is the static definition of a pipeline column
type Stage struct {
	ID    string
	Title string
}

// PipelineStages is the fixed set of board columns
var PipelineStages = []Stage{
	{StageNuevos, "Nuevos candidatos"},
	{StageRevisionCV, "Revisión de CV"},
	{StagePreseleccion, "Preselección"},
	{StageEntrevistaRRHH, "Entrevista RRHH"},
	{StagePruebaTecnica, "Prueba técnica"},
	{StageEntrevistaTecnica, "Entrevista técnica"},
	{StageEntrevistaFinal, "Entrevista final"},
	{StageReferencias, "Verificación de referencias"},
	{StageOfertaEnviada, "Oferta enviada"},
	{StageOfertaAceptada, "Oferta aceptada"},
	{StageContratado, "Contratado"},
	{StageDescartado, "Descartado"},
}

// StageIDs returns the column ids in display order
func StageIDs() []string {
	ids := make([]string, len(PipelineStages))
	for i, s := range PipelineStages {
		ids[i] = s.ID
	}
	return ids
}

// ============================================================================
// TAGS
// ============================================================================

// TagTypes are the tags offered by the candidate editor
var TagTypes = []string{
	"remoto",
	"senior",
	"junior",
	"urgente",
	"referido",
	"bilingüe",
}
