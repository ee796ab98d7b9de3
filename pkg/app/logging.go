package app

import (
	"os"

	"github.com/sirupsen/logrus"
)

// configureLogging 设置全局日志级别和格式
// --verbose 输出 Debug 级别的逐事件日志，--log-json 输出 JSON 行
func configureLogging(cfg Config) {
	logrus.SetOutput(os.Stderr)

	if cfg.Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}

	if cfg.LogJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "15:04:05.000",
		})
	}
}
