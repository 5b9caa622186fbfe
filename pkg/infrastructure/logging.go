// Package infrastructure provides reusable infrastructure components.
package infrastructure

import (
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// FxLoggerAdapter routes Fx's own lifecycle events through a zap
// SugaredLogger, so dependency-graph noise lands at debug level and
// only failures surface as errors.
type FxLoggerAdapter struct {
	logger *zap.SugaredLogger
}

// NewFxLoggerAdapter creates an fxevent.Logger backed by the given zap
// logger.
func NewFxLoggerAdapter(logger *zap.Logger) fxevent.Logger {
	return &FxLoggerAdapter{logger: logger.Sugar()}
}

// LogEvent implements fxevent.Logger.
func (a *FxLoggerAdapter) LogEvent(event fxevent.Event) {
	switch e := event.(type) {
	case *fxevent.OnStartExecuting:
		a.logger.Debugf("HOOK OnStart executing: %s", e.FunctionName)
	case *fxevent.OnStartExecuted:
		a.hookResult("OnStart", e.FunctionName, e.Err)
	case *fxevent.OnStopExecuting:
		a.logger.Debugf("HOOK OnStop executing: %s", e.FunctionName)
	case *fxevent.OnStopExecuted:
		a.hookResult("OnStop", e.FunctionName, e.Err)
	case *fxevent.Supplied:
		a.logger.Debugf("SUPPLY: %s", e.TypeName)
	case *fxevent.Provided:
		if e.Err != nil {
			a.logger.Errorf("PROVIDE failed: %v", e.Err)
		} else {
			a.logger.Debugf("PROVIDE: %v", e.OutputTypeNames)
		}
	case *fxevent.Invoking:
		a.logger.Debugf("INVOKE: %s", e.FunctionName)
	case *fxevent.Invoked:
		if e.Err != nil {
			a.logger.Errorf("INVOKE failed: %s, error: %v", e.FunctionName, e.Err)
		}
	case *fxevent.Stopping:
		a.logger.Infof("STOPPING: %s", e.Signal)
	case *fxevent.Stopped:
		a.simpleResult("STOPPED", e.Err)
	case *fxevent.RollingBack:
		a.logger.Errorf("ROLLING BACK: %v", e.StartErr)
	case *fxevent.RolledBack:
		a.simpleResult("ROLLED BACK", e.Err)
	case *fxevent.Started:
		a.simpleResult("STARTED", e.Err)
	case *fxevent.LoggerInitialized:
		a.simpleResult("LOGGER INITIALIZED", e.Err)
	default:
		a.logger.Debugf("UNKNOWN Fx event: %T", event)
	}
}

func (a *FxLoggerAdapter) hookResult(hook, function string, err error) {
	if err != nil {
		a.logger.Errorf("HOOK %s failed: %s, error: %v", hook, function, err)
	} else {
		a.logger.Debugf("HOOK %s executed: %s", hook, function)
	}
}

func (a *FxLoggerAdapter) simpleResult(action string, err error) {
	if err != nil {
		a.logger.Errorf("%s with error: %v", action, err)
	} else {
		a.logger.Info(action)
	}
}
