package experiment

import (
	"github.com/rs/xid"

	"github.com/cogarch/prw/datarecording"
	"github.com/cogarch/prw/monitoring"
)

// Builder can be used to build an experiment.
type Builder struct {
	config         Config
	recordingOn    bool
	monitorOn      bool
	monitorPort    int
	outputFileName string
}

// MakeBuilder creates a new builder with the default configuration.
func MakeBuilder() Builder {
	return Builder{
		config:      DefaultConfig(),
		recordingOn: true,
		monitorOn:   false,
	}
}

// WithConfig sets the configuration of the experiment.
func (b Builder) WithConfig(c Config) Builder {
	b.config = c
	return b
}

// WithoutRecording disables recording results to SQLite.
func (b Builder) WithoutRecording() Builder {
	b.recordingOn = false
	return b
}

// WithMonitoring enables the monitoring server.
func (b Builder) WithMonitoring() Builder {
	b.monitorOn = true
	return b
}

// WithMonitorPort sets the port number for the monitoring server.
func (b Builder) WithMonitorPort(port int) Builder {
	b.monitorPort = port
	return b
}

// WithOutputFileName sets the custom output file name for the data recorder.
func (b Builder) WithOutputFileName(filename string) Builder {
	b.outputFileName = filename
	return b
}

func (b Builder) parametersMustBeValid() {
	if !b.monitorOn && b.monitorPort != 0 {
		panic("monitor port cannot be set when monitoring is disabled")
	}

	if !b.recordingOn && b.outputFileName != "" {
		panic("output file name cannot be set when recording is disabled")
	}
}

// Build builds the experiment.
func (b Builder) Build() *Experiment {
	b.parametersMustBeValid()

	e := &Experiment{
		id:     xid.New().String(),
		config: b.config,
	}

	if b.recordingOn {
		outputPath := b.outputFileName
		if outputPath == "" {
			outputPath = "prw_run_" + e.id
		}

		e.recorder = datarecording.NewDataRecorder(outputPath)
		e.recorder.CreateTable("runs", RunRow{})
		e.recorder.CreateTable("trials", TrialRow{})
	}

	if b.monitorOn {
		e.monitor = monitoring.NewMonitor()
		if b.monitorPort > 0 {
			e.monitor.WithPortNumber(b.monitorPort)
		}
		e.monitor.StartServer()
	}

	return e
}
