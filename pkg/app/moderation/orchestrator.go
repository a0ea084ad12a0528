package moderation

import (
	"context"
	"time"

	"github.com/NeuralTrust/RuleGuard/pkg/domain/audit"
	"github.com/NeuralTrust/RuleGuard/pkg/domain/rule"
	"github.com/NeuralTrust/RuleGuard/pkg/domain/tenant"
	"github.com/NeuralTrust/RuleGuard/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
)

type Stage string

const (
	StageRetrieving   Stage = "retrieving"
	StageNoRulesFound Stage = "no_rules_found"
	StageRuleSetReady Stage = "rule_set_ready"
	StageInvoking     Stage = "invoking"
	StageParsing      Stage = "parsing"
	StageResolved     Stage = "resolved"
	StageFailed       Stage = "failed"
)

// Orchestrator runs one moderation request: retrieve the tenant's relevant
// rules, ask the judging model, parse its answer. Every failure collapses
// into VerdictUnknown with a populated reason.
type Orchestrator struct {
	logger    *logrus.Logger
	store     rule.Store
	judge     Judge
	publisher audit.Publisher
	topK      int
}

func NewOrchestrator(
	logger *logrus.Logger,
	store rule.Store,
	judge Judge,
	publisher audit.Publisher,
	topK int,
) *Orchestrator {
	if topK <= 0 {
		topK = rule.DefaultSearchLimit
	}
	if publisher == nil {
		publisher = audit.NewNoopPublisher()
	}
	return &Orchestrator{
		logger:    logger,
		store:     store,
		judge:     judge,
		publisher: publisher,
		topK:      topK,
	}
}

func (o *Orchestrator) Moderate(ctx context.Context, t tenant.Key, text string) Result {
	run := &moderationRun{orchestrator: o, tenant: t, startedAt: time.Now()}

	run.enter(StageRetrieving)
	set, err := o.store.Search(ctx, t, text, o.topK)
	if err != nil {
		return run.fail(unknown(reasonStoreUnavailable, err, rule.ErrStoreUnavailable), err)
	}
	prometheus.RetrievedRules.Observe(float64(len(set)))

	if set.IsEmpty() {
		run.enter(StageNoRulesFound)
		return run.finish(Result{Verdict: VerdictNoViolation, Reason: ReasonNoRules})
	}

	run.ruleIDs = set.IDs()
	run.enter(StageRuleSetReady)
	req, err := BuildRequest(set, text)
	if err != nil {
		return run.fail(unknown("verdict request", err, ErrEmptyRuleSet), err)
	}

	run.enter(StageInvoking)
	raw, err := o.judge.Judge(ctx, req)
	if err != nil {
		return run.fail(unknown(reasonTransport, err, ErrTransportFailure), err)
	}

	run.enter(StageParsing)
	res, err := ParseVerdict(raw)
	if err != nil {
		return run.fail(unknown(reasonUnparsable, err, ErrUnparsableVerdict), err)
	}

	run.enter(StageResolved)
	return run.finish(res)
}

type moderationRun struct {
	orchestrator *Orchestrator
	tenant       tenant.Key
	startedAt    time.Time
	stage        Stage
	ruleIDs      []string
}

func (r *moderationRun) fields() logrus.Fields {
	return logrus.Fields{
		"user_id": r.tenant.UserID,
		"scope":   r.tenant.Scope,
		"stage":   string(r.stage),
	}
}

func (r *moderationRun) enter(stage Stage) {
	r.stage = stage
	r.orchestrator.logger.WithFields(r.fields()).Debug("moderation stage")
}

func (r *moderationRun) fail(res Result, err error) Result {
	failedAt := r.stage
	r.stage = StageFailed
	r.orchestrator.logger.WithFields(r.fields()).
		WithField("failed_at", string(failedAt)).
		WithError(err).
		Warn("moderation failed")
	return r.finish(res)
}

func (r *moderationRun) finish(res Result) Result {
	latency := time.Since(r.startedAt)
	prometheus.ModerationVerdictsTotal.WithLabelValues(res.Verdict.String(), string(r.stage)).Inc()
	if prometheus.Config.EnableLatency {
		prometheus.ModerationLatency.WithLabelValues(res.Verdict.String()).Observe(float64(latency.Milliseconds()))
	}

	evt := audit.NewEvent(audit.EventModerationEvaluated, r.tenant.UserID, r.tenant.Scope)
	evt.RuleIDs = r.ruleIDs
	evt.Verdict = res.Verdict.String()
	evt.Reason = res.Reason
	evt.Stage = string(r.stage)
	evt.LatencyMs = latency.Milliseconds()
	r.orchestrator.publisher.Publish(evt)

	r.orchestrator.logger.WithFields(r.fields()).
		WithField("verdict", res.Verdict.String()).
		WithField("latency_ms", latency.Milliseconds()).
		Debug("moderation finished")
	return res
}
