package model

import (
	"fmt"
	"time"

	apperrors "github.com/vidasync/health-api/pkg/errors"
)

// MeasurementType particiona a tabela de medições em três coleções
// lógicas. O valor é definido uma única vez na criação, a partir do
// segmento de rota, e nunca muda em atualizações.
type MeasurementType string

const (
	MeasurementBloodPressure MeasurementType = "BLOOD_PRESSURE"
	MeasurementGlucose       MeasurementType = "GLUCOSE"
	MeasurementOxygen        MeasurementType = "OXYGEN"
)

// measurementSegments é o mapeamento total dos segmentos de rota
// conhecidos para o discriminador armazenado.
var measurementSegments = map[string]MeasurementType{
	"blood-pressure": MeasurementBloodPressure,
	"glucose":        MeasurementGlucose,
	"oxygen":         MeasurementOxygen,
}

// ParseMeasurementType converte um segmento de rota no discriminador.
// Segmento desconhecido é rejeitado com falha tipada de validação, nunca
// armazenado como tipo indefinido.
func ParseMeasurementType(segment string) (MeasurementType, error) {
	mt, ok := measurementSegments[segment]
	if !ok {
		return "", fmt.Errorf("%w: tipo de medição desconhecido %q", apperrors.ErrBadRequest, segment)
	}
	return mt, nil
}

// Measurement é uma medição biométrica (pressão, glicose ou oxigenação)
// com os três períodos do dia.
type Measurement struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	UserID      uint            `gorm:"not null;index" json:"userId"`
	Type        MeasurementType `gorm:"not null;size:20;index" json:"type"`
	Observation string          `gorm:"not null" json:"observation"`
	Morning     string          `gorm:"not null;size:50" json:"morning"`
	Afternoon   string          `gorm:"not null;size:50" json:"afternoon"`
	Night       string          `gorm:"not null;size:50" json:"night"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}

// TableName define o nome da tabela
func (Measurement) TableName() string {
	return "measurements"
}

// OwnerID retorna o usuário dono do registro
func (m Measurement) OwnerID() uint {
	return m.UserID
}
