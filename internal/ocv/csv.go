package ocv

import (
	"encoding/csv"
	"os"
	"strconv"
)

// WriteOCVCSV writes the voltage grid rows for one temperature.
func WriteOCVCSV(path string, tempK float64, rows []Row) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"index",
		"temperature_k",
		"x",
		"hull_energy",
		"voltage",
		"stability",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range rows {
		row := []string{
			strconv.Itoa(r.Index),
			fmtFloat(tempK),
			fmtFloat(r.X),
			fmtFloat(r.HullEnergy),
			fmtFloat(r.Voltage),
			string(r.Stability),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
