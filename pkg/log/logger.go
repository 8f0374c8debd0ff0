package log

import (
	"os"
	"strconv"
	"strings"

	"Worklog/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var L *zap.Logger

func init() {
	L = newLogger(zap.InfoLevel, zapcore.AddSync(os.Stdout))
}

// Init 按配置重建全局 logger，配置了 File 时同时写入滚动文件
func Init(conf *config.Log) {
	if conf == nil {
		return
	}
	level := zap.InfoLevel
	if err := level.UnmarshalText([]byte(conf.Level)); err != nil {
		L.Warn("unknown log level, fallback to info", zap.String("level", conf.Level))
		level = zap.InfoLevel
	}

	sink := zapcore.AddSync(os.Stdout)
	if conf.File != "" {
		sink = zapcore.NewMultiWriteSyncer(sink, zapcore.AddSync(&lumberjack.Logger{
			Filename:   conf.File,
			MaxSize:    conf.MaxSizeMB,
			MaxBackups: conf.MaxBackups,
			MaxAge:     conf.MaxAgeDays,
			Compress:   true,
		}))
	}
	L = newLogger(level, sink)
}

func newLogger(level zapcore.Level, sink zapcore.WriteSyncer) *zap.Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeCaller = func(caller zapcore.EntryCaller, enc zapcore.PrimitiveArrayEncoder) {
		projectName := "Worklog"

		index := strings.Index(caller.File, projectName)
		if index != -1 {
			enc.AppendString(caller.File[index:] + ":" + strconv.Itoa(caller.Line))
		} else {
			enc.AppendString(caller.TrimmedPath())
		}
	}
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewJSONEncoder(encoderConfig)

	core := zapcore.NewCore(encoder, sink, level)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel))
}
