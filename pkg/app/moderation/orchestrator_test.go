package moderation_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/NeuralTrust/RuleGuard/mocks"
	"github.com/NeuralTrust/RuleGuard/pkg/app/moderation"
	"github.com/NeuralTrust/RuleGuard/pkg/domain/audit"
	"github.com/NeuralTrust/RuleGuard/pkg/domain/rule"
	"github.com/NeuralTrust/RuleGuard/pkg/domain/tenant"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var alice = tenant.New("alice", "k1")

func newOrchestrator(t *testing.T) (*moderation.Orchestrator, *mocks.Store, *mocks.Judge) {
	t.Helper()
	store := mocks.NewStore(t)
	judge := mocks.NewJudge(t)
	return moderation.NewOrchestrator(logrus.New(), store, judge, nil, 0), store, judge
}

func TestOrchestrator_StoreUnavailable(t *testing.T) {
	o, store, _ := newOrchestrator(t)
	store.EXPECT().Search(mock.Anything, alice, "hello", rule.DefaultSearchLimit).
		Return(nil, fmt.Errorf("%w: %v", rule.ErrStoreUnavailable, "connection refused"))

	res := o.Moderate(context.Background(), alice, "hello")

	assert.Equal(t, moderation.VerdictUnknown, res.Verdict)
	assert.Equal(t, "rule store unavailable: connection refused", res.Reason)
}

func TestOrchestrator_EmptyRuleSetSkipsJudge(t *testing.T) {
	o, store, judge := newOrchestrator(t)
	store.EXPECT().Search(mock.Anything, alice, "hello", rule.DefaultSearchLimit).
		Return(rule.RetrievedSet{}, nil)

	res := o.Moderate(context.Background(), alice, "hello")

	assert.Equal(t, moderation.VerdictNoViolation, res.Verdict)
	assert.Equal(t, moderation.ReasonNoRules, res.Reason)
	judge.AssertNotCalled(t, "Judge", mock.Anything, mock.Anything)
}

func TestOrchestrator_TransportFailure(t *testing.T) {
	o, store, judge := newOrchestrator(t)
	store.EXPECT().Search(mock.Anything, alice, "hello", rule.DefaultSearchLimit).
		Return(retrievedSet("No greetings"), nil)
	judge.EXPECT().Judge(mock.Anything, mock.Anything).
		Return("", fmt.Errorf("%w: %v", moderation.ErrTransportFailure, "deadline exceeded")).
		Once()

	res := o.Moderate(context.Background(), alice, "hello")

	assert.Equal(t, moderation.VerdictUnknown, res.Verdict)
	assert.Equal(t, "judging model transport failure: deadline exceeded", res.Reason)
}

func TestOrchestrator_UnwrappedJudgeErrorIsTransportFailure(t *testing.T) {
	o, store, judge := newOrchestrator(t)
	store.EXPECT().Search(mock.Anything, alice, "hello", rule.DefaultSearchLimit).
		Return(retrievedSet("No greetings"), nil)
	judge.EXPECT().Judge(mock.Anything, mock.Anything).Return("", context.Canceled).Once()

	res := o.Moderate(context.Background(), alice, "hello")

	assert.Equal(t, moderation.VerdictUnknown, res.Verdict)
	assert.Equal(t, "judging model transport failure: context canceled", res.Reason)
}

func TestOrchestrator_UnparsableVerdict(t *testing.T) {
	o, store, judge := newOrchestrator(t)
	store.EXPECT().Search(mock.Anything, alice, "hello", rule.DefaultSearchLimit).
		Return(retrievedSet("No greetings"), nil)
	judge.EXPECT().Judge(mock.Anything, mock.Anything).Return("I cannot decide.", nil).Once()

	res := o.Moderate(context.Background(), alice, "hello")

	assert.Equal(t, moderation.VerdictUnknown, res.Verdict)
	assert.Equal(t, "unparsable verdict: no JSON object found in model output", res.Reason)
}

func TestOrchestrator_Resolved(t *testing.T) {
	o, store, judge := newOrchestrator(t)
	store.EXPECT().Search(mock.Anything, alice, "hello there", rule.DefaultSearchLimit).
		Return(retrievedSet("No greetings", "No farewells"), nil)
	judge.EXPECT().
		Judge(mock.Anything, mock.MatchedBy(func(req *moderation.Request) bool {
			return assert.ObjectsAreEqual([]string{"rule-a", "rule-b"}, req.RuleIDs)
		})).
		Return("```json\n{\"is_violation\": true, \"reason\": \"R1 forbids greetings\"}\n```", nil).
		Once()

	res := o.Moderate(context.Background(), alice, "hello there")

	assert.Equal(t, moderation.VerdictViolation, res.Verdict)
	assert.Equal(t, "R1 forbids greetings", res.Reason)
}

func TestOrchestrator_UsesConfiguredTopK(t *testing.T) {
	store := mocks.NewStore(t)
	o := moderation.NewOrchestrator(logrus.New(), store, mocks.NewJudge(t), nil, 3)
	store.EXPECT().Search(mock.Anything, alice, "hello", 3).Return(nil, nil)

	res := o.Moderate(context.Background(), alice, "hello")
	assert.Equal(t, moderation.VerdictNoViolation, res.Verdict)
}

func TestOrchestrator_PublishesEvaluation(t *testing.T) {
	store := mocks.NewStore(t)
	judge := mocks.NewJudge(t)
	publisher := mocks.NewPublisher(t)
	o := moderation.NewOrchestrator(logrus.New(), store, judge, publisher, 0)

	store.EXPECT().Search(mock.Anything, alice, "hello", rule.DefaultSearchLimit).
		Return(retrievedSet("No greetings"), nil)
	judge.EXPECT().Judge(mock.Anything, mock.Anything).
		Return(`{"is_violation": false, "reason": "fine"}`, nil)
	publisher.EXPECT().
		Publish(mock.MatchedBy(func(evt *audit.Event) bool {
			return evt.Type == audit.EventModerationEvaluated &&
				evt.UserID == "alice" &&
				evt.Scope == "k1" &&
				evt.Verdict == "no_violation" &&
				evt.Stage == string(moderation.StageResolved) &&
				assert.ObjectsAreEqual([]string{"rule-a"}, evt.RuleIDs)
		})).
		Once()

	o.Moderate(context.Background(), alice, "hello")
}

func TestOrchestrator_FailurePublishesFailedStage(t *testing.T) {
	store := mocks.NewStore(t)
	publisher := mocks.NewPublisher(t)
	o := moderation.NewOrchestrator(logrus.New(), store, mocks.NewJudge(t), publisher, 0)

	store.EXPECT().Search(mock.Anything, alice, "hello", rule.DefaultSearchLimit).
		Return(nil, errors.New("boom"))
	publisher.EXPECT().
		Publish(mock.MatchedBy(func(evt *audit.Event) bool {
			return evt.Stage == string(moderation.StageFailed) && evt.Verdict == "unknown"
		})).
		Once()

	res := o.Moderate(context.Background(), alice, "hello")
	assert.Equal(t, "rule store unavailable: boom", res.Reason)
}
