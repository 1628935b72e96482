package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type Notifier struct {
	mock.Mock
}

func NewNotifier(t interface {
	mock.TestingT
	Cleanup(func())
}) *Notifier {
	m := &Notifier{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *Notifier) Success(message string) {
	m.Called(message)
}

func (m *Notifier) Error(message string) {
	m.Called(message)
}

type ImageProber struct {
	mock.Mock
}

func NewImageProber(t interface {
	mock.TestingT
	Cleanup(func())
}) *ImageProber {
	m := &ImageProber{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ImageProber) Probe(ctx context.Context, url string) error {
	args := m.Called(ctx, url)
	return args.Error(0)
}
