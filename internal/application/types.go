package application

import "launchdex/internal/domain"

// Re-export domain types for use by adapters
type (
	Program       = domain.Program
	RankedProgram = domain.RankedProgram
)

// Label returns the picker label of a program
func Label(p Program) string {
	return domain.Label(p)
}
