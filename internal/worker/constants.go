package worker

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// Log messages for the day ticker
const (
	LogMsgDayTickerDisabled  = "Day ticker disabled, days advance on request only"
	LogMsgDayTickerScheduled = "Day close scheduled"
	LogMsgDayClosing         = "Closing day"
	LogMsgDayClosed          = "Day closed"
	LogMsgDayManualTrigger   = "Day close manually triggered"
	LogMsgDayHookFailed      = "Day report hook failed"
)

// WorkerNameDayTicker names the ticker in shutdown logs
const WorkerNameDayTicker = "day ticker"
