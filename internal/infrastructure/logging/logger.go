// Package logging はロギング機能を提供します
package logging

import (
	"io"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogEntry はログエントリを表す構造体です
type LogEntry struct {
	// Timestamp はログが記録された時刻をRFC3339形式で表します
	Timestamp string `json:"timestamp"`
	// Level はログレベル（INFO, WARN, ERROR等）を表します
	Level string `json:"level"`
	// Message はログメッセージの内容を表します
	Message string `json:"message"`
	// Error はエラーが発生した場合のエラーメッセージを表します
	Error string `json:"error,omitempty"`
}

// Logger は構造化ログを出力するためのインターフェースです
type Logger interface {
	Log(level, message string, err error)
}

// JSONLogger はJSONフォーマットでログを出力するロガーです
type JSONLogger struct {
	zl *zap.Logger
}

// NewJSONLogger は新しいJSONLoggerインスタンスを作成します
func NewJSONLogger(writer io.Writer) *JSONLogger {
	if writer == nil {
		writer = os.Stdout
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		MessageKey:     "message",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.TimeEncoderOfLayout(time.RFC3339),
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(writer),
		zapcore.DebugLevel,
	)
	return &JSONLogger{zl: zap.New(core)}
}

// Log はメッセージをJSONフォーマットでログ出力します。
// 解釈できないレベルは INFO として扱います。
func (l *JSONLogger) Log(level, message string, err error) {
	var lvl zapcore.Level
	if uerr := lvl.UnmarshalText([]byte(level)); uerr != nil {
		lvl = zapcore.InfoLevel
	}

	var fields []zap.Field
	if err != nil {
		fields = append(fields, zap.Error(err))
	}

	if ce := l.zl.Check(lvl, message); ce != nil {
		ce.Write(fields...)
	}
}

// Sync はバッファされたログを書き出します
func (l *JSONLogger) Sync() error {
	return l.zl.Sync()
}

// Nop は何も出力しないロガーです
type Nop struct{}

// Log は何もしません
func (Nop) Log(string, string, error) {}
