package measurement

import (
	"fmt"
	"time"

	parquetbuffer "github.com/xitongsys/parquet-go-source/buffer"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"
)

type measurementParquetRow struct {
	ID                    int64   `parquet:"name=id, type=INT64"`
	UserID                int64   `parquet:"name=user_id, type=INT64"`
	WeeklyRoutineID       int64   `parquet:"name=weekly_routine_id, type=INT64"`
	CreatedAtUTCISO       string  `parquet:"name=created_at_utc_iso, type=BYTE_ARRAY, convertedtype=UTF8"`
	Weight                float64 `parquet:"name=weight_kg, type=DOUBLE"`
	Chest                 float64 `parquet:"name=chest_mm, type=DOUBLE"`
	Abdomen               float64 `parquet:"name=abdomen_mm, type=DOUBLE"`
	Thigh                 float64 `parquet:"name=thigh_mm, type=DOUBLE"`
	BypassMeasurementFlag bool    `parquet:"name=bypass_measurement_flag, type=BOOLEAN"`
	BodyFatPercent        float64 `parquet:"name=body_fat_pct, type=DOUBLE"`
	MuscleMass            float64 `parquet:"name=muscle_mass_kg, type=DOUBLE"`
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// ExportParquet encodes measurements as a SNAPPY compressed parquet file.
// Missing skinfold sites are written as 0.
func ExportParquet(measurements []Measurement) ([]byte, error) {
	fw := parquetbuffer.NewBufferFile()
	pw, err := writer.NewParquetWriter(fw, new(measurementParquetRow), 4)
	if err != nil {
		return nil, fmt.Errorf("new parquet writer: %w", err)
	}
	pw.CompressionType = parquet.CompressionCodec_SNAPPY

	for _, m := range measurements {
		row := measurementParquetRow{
			ID:                    int64(m.ID),
			UserID:                int64(m.UserID),
			CreatedAtUTCISO:       m.CreatedAt.UTC().Format(time.RFC3339),
			Weight:                m.Weight,
			Chest:                 valueOrZero(m.Chest),
			Abdomen:               valueOrZero(m.Abdomen),
			Thigh:                 valueOrZero(m.Thigh),
			BypassMeasurementFlag: m.BypassMeasurementFlag,
			BodyFatPercent:        m.BodyFatPercent,
			MuscleMass:            m.MuscleMass,
		}
		if m.WeeklyRoutineID != nil {
			row.WeeklyRoutineID = int64(*m.WeeklyRoutineID)
		}
		if err := pw.Write(row); err != nil {
			_ = pw.WriteStop()
			return nil, fmt.Errorf("write parquet row %d: %w", m.ID, err)
		}
	}
	if err := pw.WriteStop(); err != nil {
		return nil, fmt.Errorf("finish parquet file: %w", err)
	}
	if err := fw.Close(); err != nil {
		return nil, err
	}
	return append([]byte(nil), fw.Bytes()...), nil
}
