package logging

import "github.com/sirupsen/logrus"

// PhaseWrapper runs one named simulation phase with start/complete/error
// logging and a duration timing recorded into logData.
func PhaseWrapper(
	phaseName string,
	log *logrus.Logger,
	logData *LogData,
	phase func(*LogData) error,
) error {
	log.Infof("Phase.%v.Start", phaseName)

	endTimer := logData.AddTiming(phaseName + "_ms")
	defer endTimer()

	if err := phase(logData); err != nil {
		logData.Log().WithError(err).Errorf("Phase.%v.Error", phaseName)
		return err
	}

	logData.Log().Infof("Phase.%v.Complete", phaseName)
	return nil
}
