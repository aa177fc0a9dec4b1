package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octosched/pkg/domain/types"
)

func TestScheduleIdentity(t *testing.T) {
	t.Run("derived identity is stable", func(t *testing.T) {
		a := types.NewScheduleID(42, 7)
		b := types.NewScheduleID(42, 7)
		gt.V(t, a).Equal(b)
		gt.V(t, a).Equal(types.ScheduleID("[job-scheduler_42_7]"))
	})

	t.Run("one-off identity does not collide with schedule identity", func(t *testing.T) {
		s := types.NewScheduleID(42, 7)
		j := types.NewOneOffJobID(42, 7)
		gt.V(t, string(j)).NotEqual(string(s))
		gt.V(t, j).Equal(types.JobID("[oneoff-job_42_7]"))
	})

	t.Run("schedule identity maps to its one-off identity", func(t *testing.T) {
		id, ok := types.NewScheduleID(42, 7).OneOffJobID()
		gt.True(t, ok)
		gt.V(t, id).Equal(types.NewOneOffJobID(42, 7))

		_, ok = types.ScheduleID("[job-scheduler_42]").OneOffJobID()
		gt.False(t, ok)
		_, ok = types.ScheduleID("custom").OneOffJobID()
		gt.False(t, ok)
	})

	t.Run("different pairs give different identities", func(t *testing.T) {
		gt.V(t, types.NewScheduleID(1, 23)).NotEqual(types.NewScheduleID(12, 3))
	})

	t.Run("recurring run id is namespaced separately", func(t *testing.T) {
		id := types.NewRecurringRunJobID(types.NewScheduleID(1, 2), 1000)
		gt.V(t, id).Equal(types.JobID("[job_1_2]_1000"))
	})
}

func TestJobPriority(t *testing.T) {
	t.Run("high runs before normal before low", func(t *testing.T) {
		gt.True(t, types.JobPriorityHigh < types.JobPriorityNormal)
		gt.True(t, types.JobPriorityNormal < types.JobPriorityLow)
	})

	t.Run("parse names and numbers", func(t *testing.T) {
		gt.V(t, gt.R1(types.ParseJobPriority("high")).NoError(t)).Equal(types.JobPriorityHigh)
		gt.V(t, gt.R1(types.ParseJobPriority("Low")).NoError(t)).Equal(types.JobPriorityLow)
		gt.V(t, gt.R1(types.ParseJobPriority("10")).NoError(t)).Equal(types.JobPriorityNormal)
		gt.V(t, gt.R1(types.ParseJobPriority("")).NoError(t)).Equal(types.JobPriorityNormal)
	})

	t.Run("reject unknown priority", func(t *testing.T) {
		_, err := types.ParseJobPriority("urgent")
		gt.Error(t, err)
		_, err = types.ParseJobPriority("7")
		gt.Error(t, err)
	})
}

func TestCronExpr(t *testing.T) {
	gt.NoError(t, types.CronExpr("*/2 * * * *").Validate())
	gt.NoError(t, types.CronExpr("0 3 * * 1").Validate())
	gt.Error(t, types.CronExpr("* * * *").Validate())
	gt.Error(t, types.CronExpr("0 0 * * * *").Validate())
	gt.Error(t, types.CronExpr("").Validate())
}
