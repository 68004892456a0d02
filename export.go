package hodgkin

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ExportConfig configures the exporting of a simulation run.
type ExportConfig struct {
	Filename     string
	OutputDir    string // Defaults to the working directory.
	AsCSV        bool
	Timestamp    bool                  // Stamp the filename with the wall-clock time.
	CSVAppend    func(s Sample) string // Custom export (do not include leading comma).
	CSVAppendHdr func() string         // Header for the custom export.
}

// IsUseless returns whether this config doesn't actually do anything.
func (c ExportConfig) IsUseless() bool {
	return !c.AsCSV
}

// createCSVFile returns a file which requires a defer close statement!
func createCSVFile(conf ExportConfig) *os.File {
	filename := conf.Filename
	if conf.Timestamp {
		t := time.Now()
		filename = fmt.Sprintf("%s-%d-%02d-%02dT%02d.%02d.%02d", filename, t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second())
	}
	f, err := os.Create(filepath.Join(conf.OutputDir, fmt.Sprintf("trajectory-%s.csv", filename)))
	if err != nil {
		panic(err)
	}
	// Header
	f.WriteString(fmt.Sprintf(`# Creation date (UTC): %s
# Records are <time (ms)>,<V (mV)>,<m>,<h>,<n>,<Iext (uA/cm2)>
time,V,m,h,n,Iext`, time.Now().UTC()))
	if conf.CSVAppendHdr != nil {
		f.WriteString("," + conf.CSVAppendHdr())
	}
	return f
}

// StreamSamples streams the output of the channel to the configured
// file until the channel closes, i.e. until the run is over.
func StreamSamples(conf ExportConfig, sampleChan <-chan Sample) {
	if !conf.AsCSV {
		for range sampleChan {
			// Drain so the driver never blocks.
		}
		return
	}
	f := createCSVFile(conf)
	defer f.Close()
	for sample := range sampleChan {
		asTxt := fmt.Sprintf("%f,%f,%f,%f,%f,%f", sample.Time, sample.State.V, sample.State.M, sample.State.H, sample.State.N, sample.IExt)
		if conf.CSVAppend != nil {
			asTxt += "," + conf.CSVAppend(sample)
		}
		if _, err := f.WriteString("\n" + asTxt); err != nil {
			panic(err)
		}
	}
}
