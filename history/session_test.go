// SPDX-License-Identifier: MIT

package history_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/jigsaw/derive"
	"github.com/katalvlaran/jigsaw/history"
	"github.com/katalvlaran/jigsaw/music"
	"github.com/katalvlaran/jigsaw/spec"
)

type SessionSuite struct {
	suite.Suite

	trueSpec  *spec.Spec
	falseSpec *spec.Spec
	logs      *observer.ObservedLogs
	session   *history.Session
}

func (s *SessionSuite) SetupTest() {
	s.trueSpec = skeleton(s.T(), "1234", "2143", "2413")
	s.falseSpec = skeleton(s.T(), "1234", "2143", "1234", "2413")

	obsCore, logs := observer.New(zapcore.DebugLevel)
	s.logs = logs
	sess, err := history.NewSession(s.trueSpec, history.WithLogger(zap.New(obsCore)))
	s.Require().NoError(err)
	s.session = sess
}

func (s *SessionSuite) TestInitialDerivation() {
	s.Same(s.trueSpec, s.session.Spec())
	s.True(s.session.Derived().IsTrue())
	s.Equal(2, s.session.Derived().Stats.PartLen)
	s.Equal(1, s.logs.FilterMessage("derived composition").Len())
}

func (s *SessionSuite) TestEditUndoRedo() {
	s.Require().NoError(s.session.Edit(s.falseSpec))
	s.False(s.session.Derived().IsTrue())
	s.Equal(derive.Stats{PartLen: 3, NumFalseRows: 2, NumFalseGroups: 1}, s.session.Derived().Stats)

	ok, err := s.session.Undo()
	s.Require().NoError(err)
	s.True(ok)
	s.Same(s.trueSpec, s.session.Spec())
	s.True(s.session.Derived().IsTrue())

	ok, err = s.session.Undo()
	s.Require().NoError(err)
	s.False(ok)

	ok, err = s.session.Redo()
	s.Require().NoError(err)
	s.True(ok)
	s.Same(s.falseSpec, s.session.Spec())
	s.Equal(2, s.session.Derived().Stats.NumFalseRows)

	ok, err = s.session.Redo()
	s.Require().NoError(err)
	s.False(ok)

	s.Equal(1, s.logs.FilterMessage("history push").Len())
	s.Equal(1, s.logs.FilterMessage("history undo").Len())
	s.Equal(1, s.logs.FilterMessage("history redo").Len())
	s.Equal(4, s.logs.FilterMessage("derived composition").Len())
}

func (s *SessionSuite) TestApply() {
	err := s.session.Apply(func(cur *spec.Spec) (*spec.Spec, error) {
		frags := cur.Frags()
		frags[0].IsMuted = true
		return spec.New(cur.Stage(), frags, cur.PartHeads())
	})
	s.Require().NoError(err)
	s.Equal(2, s.session.Len())
	s.Zero(s.session.Derived().Stats.PartLen)
	s.False(s.session.Derived().Frags[0].IsProved)

	boom := errors.New("boom")
	err = s.session.Apply(func(*spec.Spec) (*spec.Spec, error) { return nil, boom })
	s.ErrorIs(err, boom)
	err = s.session.Apply(func(*spec.Spec) (*spec.Spec, error) { return nil, nil })
	s.ErrorIs(err, history.ErrNilSpec)
	s.Equal(2, s.session.Len())
}

func (s *SessionSuite) TestEditNil() {
	s.ErrorIs(s.session.Edit(nil), history.ErrNilSpec)
	s.Equal(1, s.session.Len())
}

func (s *SessionSuite) TestConcurrentReaders() {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = s.session.Derived().Stats
				_ = s.session.Spec().Len()
			}
		}()
	}
	for i := 0; i < 10; i++ {
		s.Require().NoError(s.session.Edit(s.falseSpec))
		_, err := s.session.Undo()
		s.Require().NoError(err)
	}
	wg.Wait()
	s.Equal(2, s.session.Len())
}

func (s *SessionSuite) TestOptionErrors() {
	_, err := history.NewSession(nil)
	s.ErrorIs(err, history.ErrNilSpec)

	_, err = history.NewSession(s.trueSpec, history.WithCapacity(-1))
	s.ErrorIs(err, history.ErrBadCapacity)

	_, err = history.NewSession(s.trueSpec,
		history.WithDeriveOptions(derive.WithMusic(music.WithMinRunLength(1))))
	s.ErrorIs(err, music.ErrBadMinRun)
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionSuite))
}
