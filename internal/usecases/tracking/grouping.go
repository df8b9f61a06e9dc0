package tracking

import (
	"github.com/Gabryellzs/blecks-david-sub000/internal/domain"
)

// GroupDataByPlatform reparte registros pela plataforma de origem preservando
// a ordem relativa dentro de cada grupo
func GroupDataByPlatform[T domain.PlatformRecord](records []T) map[domain.PlatformKind][]T {
	grouped := make(map[domain.PlatformKind][]T)
	for _, record := range records {
		kind := record.PlatformKind()
		grouped[kind] = append(grouped[kind], record)
	}
	return grouped
}

// FilterDataByPlatform retorna apenas os registros da plataforma indicada,
// preservando a ordem original
func FilterDataByPlatform[T domain.PlatformRecord](records []T, kind domain.PlatformKind) []T {
	filtered := make([]T, 0, len(records))
	for _, record := range records {
		if record.PlatformKind() == kind {
			filtered = append(filtered, record)
		}
	}
	return filtered
}
