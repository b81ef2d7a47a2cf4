package pipeline

import (
	"time"

	"github.com/thenoetrevino/talento/internal/models"
)

// SeedBoard returns the board with the sample candidates shown on a fresh install
func SeedBoard() *Board {
	b := NewBoard(models.PipelineStages)
	for _, s := range seedCandidates() {
		col := b.columns[s.status]
		col.Items = append(col.Items, s.item)
	}
	return b
}

type seedEntry struct {
	status string
	item   *models.CandidateItem
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dayPtr(y int, m time.Month, d int) *time.Time {
	t := day(y, m, d)
	return &t
}

func contract(ct models.ContractType) *models.ContractType {
	return &ct
}

func seedCandidates() []seedEntry {
	return []seedEntry{
		{models.StageNuevos, &models.CandidateItem{
			ID: "cand-1", Name: "Laura Martínez", Email: "laura.martinez@example.com",
			Position: "Desarrolladora Frontend", Department: "Tecnología",
			Skills: []string{"React", "TypeScript", "CSS"}, Salary: 38000,
			Priority: models.PriorityMedia, ApplicationDate: day(2024, time.March, 4),
			Tags: []string{"remoto"},
		}},
		{models.StageRevisionCV, &models.CandidateItem{
			ID: "cand-2", Name: "Carlos Gómez", Email: "carlos.gomez@example.com",
			Position: "Ingeniero Backend", Department: "Tecnología",
			Skills: []string{"Go", "PostgreSQL", "Docker"}, Salary: 45000,
			Priority: models.PriorityAlta, ApplicationDate: day(2024, time.February, 26),
			Notes: "Experiencia previa en **fintech**.", Tags: []string{"senior"},
		}},
		{models.StageRevisionCV, &models.CandidateItem{
			ID: "cand-3", Name: "Marta Sánchez", Email: "marta.sanchez@example.com",
			Position: "Analista de Datos", Department: "Finanzas",
			Skills: []string{"SQL", "Python", "Power BI"}, Salary: 34000,
			Priority: models.PriorityBaja, ApplicationDate: day(2024, time.March, 1),
			Tags: []string{},
		}},
		{models.StageEntrevistaRRHH, &models.CandidateItem{
			ID: "cand-4", Name: "Javier López", Email: "javier.lopez@example.com",
			Position: "Responsable de Ventas", Department: "Comercial",
			Skills: []string{"Negociación", "CRM"}, Salary: 42000,
			Priority: models.PriorityAlta, ApplicationDate: day(2024, time.February, 12),
			InterviewDate: dayPtr(2024, time.March, 11), Tags: []string{"referido"},
		}},
		{models.StagePruebaTecnica, &models.CandidateItem{
			ID: "cand-5", Name: "Elena Torres", Email: "elena.torres@example.com",
			Position: "DevOps", Department: "Tecnología",
			Skills: []string{"Kubernetes", "Terraform", "AWS"}, Salary: 50000,
			Priority: models.PriorityMedia, ApplicationDate: day(2024, time.February, 5),
			InterviewDate: dayPtr(2024, time.February, 20), Tags: []string{"senior", "remoto"},
		}},
		{models.StageOfertaEnviada, &models.CandidateItem{
			ID: "cand-6", Name: "Pablo Herrera", Email: "pablo.herrera@example.com",
			Position: "Diseñador UX", Department: "Producto",
			Skills: []string{"Figma", "Investigación de usuarios"}, Salary: 36000,
			Priority: models.PriorityMedia, ApplicationDate: day(2024, time.January, 22),
			InterviewDate: dayPtr(2024, time.February, 2), Tags: []string{},
			ContractType: contract(models.ContractIndefinido),
		}},
		{models.StageContratado, &models.CandidateItem{
			ID: "cand-7", Name: "Lucía Fernández", Email: "lucia.fernandez@example.com",
			Position: "Técnica de RRHH", Department: "Recursos Humanos",
			Skills: []string{"Selección", "Nóminas"}, Salary: 30000,
			Priority: models.PriorityBaja, ApplicationDate: day(2024, time.January, 8),
			InterviewDate: dayPtr(2024, time.January, 15), HireDate: dayPtr(2024, time.February, 1),
			Tags: []string{"bilingüe"}, ContractType: contract(models.ContractTemporal),
		}},
		{models.StageDescartado, &models.CandidateItem{
			ID: "cand-8", Name: "Andrés Ruiz", Email: "andres.ruiz@example.com",
			Position: "Desarrollador Backend", Department: "Tecnología",
			Skills: []string{"Java"}, Salary: 40000,
			Priority: models.PriorityBaja, ApplicationDate: day(2024, time.January, 30),
			Notes: "No cumple requisitos de experiencia.", Tags: []string{"junior"},
		}},
	}
}

// SeedIDCount is the number of seeded candidates. Sequential generators used
// alongside the seed start after it.
const SeedIDCount = 8
