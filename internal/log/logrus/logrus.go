// Package logrus は logrus を log.Logger に適合させる
package logrus

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/tkc/tasklist-checker/internal/log"
)

type logger struct {
	*logrus.Entry
}

// NewLogrus は logrus のエントリから log.Logger を作成する
func NewLogrus(l *logrus.Entry) log.Logger {
	return logger{Entry: l}
}

func (l logger) WithValues(kv log.Kv) log.Logger {
	newLogger := l.Entry.WithFields(kv)
	return NewLogrus(newLogger)
}

func (l logger) WithCtxValues(ctx context.Context) log.Logger {
	return l.WithValues(log.ValuesFromCtx(ctx))
}

func (l logger) SetValuesOnCtx(parent context.Context, values log.Kv) context.Context {
	return log.CtxWithValues(parent, values)
}
