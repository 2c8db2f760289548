// Package integration compares metadata that moves data in and out of the
// platform: notifications, data feeds and their schedules.
package integration

import (
	"github.com/olusolaa/metadata-drift-detector/internal/core/domain"
	"github.com/olusolaa/metadata-drift-detector/internal/resources/helper"
	"github.com/olusolaa/metadata-drift-detector/pkg/canonical"
	"github.com/olusolaa/metadata-drift-detector/pkg/compare"
)

var (
	notificationApplication = compare.Attr("ApplicationName", func(n domain.Notification) string {
		return canonical.OptionalString(n.ApplicationName)
	})
	notificationName = compare.Attr(domain.AttrName, func(n domain.Notification) string { return n.Name })
)

var notificationAttributes = []compare.Attribute[domain.Notification]{
	compare.Attr(domain.AttrID, func(n domain.Notification) string { return canonical.Int(n.ID) }),
	notificationName,
	notificationApplication,
	compare.Attr("Active", func(n domain.Notification) string { return canonical.Bool(n.Active) }),
	compare.Attr("TypeDisplayText", func(n domain.Notification) string { return canonical.OptionalString(n.TypeDisplayText) }),
}

func NewNotificationComparer(ignore ...string) *helper.KeyedComparer[domain.Notification] {
	return helper.NewKeyedComparer(
		domain.CategoryNotification,
		func(s *domain.Snapshot) []domain.Notification { return s.Notifications },
		compare.Spec[domain.Notification]{
			Key: compare.CompositeKey(
				[]compare.Attribute[domain.Notification]{notificationApplication, notificationName},
				notificationName.Name,
			),
			Attributes: notificationAttributes,
			Excluded:   helper.BaseExclusions(ignore...),
		},
		helper.KeyLabels[domain.Notification](true),
		helper.SeverityPolicy{
			SourceOnly: domain.SeverityWarning,
			TargetOnly: domain.SeverityInfo,
			Mismatch:   domain.SeverityInfo,
		},
	)
}

var dataFeedAttributes = []compare.Attribute[domain.DataFeed]{
	compare.Attr(domain.AttrID, func(f domain.DataFeed) string { return canonical.Int(f.ID) }),
	compare.Attr(domain.AttrName, func(f domain.DataFeed) string { return f.Name }),
	compare.Attr(domain.AttrGUID, func(f domain.DataFeed) string { return canonical.OptionalString(f.GUID) }),
	compare.Attr("IsActive", func(f domain.DataFeed) string { return canonical.Bool(f.IsActive) }),
	compare.Attr("Target", func(f domain.DataFeed) string { return canonical.OptionalString(f.Target) }),
}

func NewDataFeedComparer(ignore ...string) *helper.KeyedComparer[domain.DataFeed] {
	return helper.NewKeyedComparer(
		domain.CategoryDataFeed,
		func(s *domain.Snapshot) []domain.DataFeed { return s.DataFeeds },
		compare.Spec[domain.DataFeed]{
			Key:        compare.CompositeKey(dataFeedAttributes[1:2]),
			Attributes: dataFeedAttributes,
			Excluded:   helper.BaseExclusions(ignore...),
		},
		helper.KeyLabels[domain.DataFeed](true),
		helper.SeverityPolicy{
			SourceOnly: domain.SeverityWarning,
			TargetOnly: domain.SeverityInfo,
			Mismatch:   domain.SeverityWarning,
		},
	)
}

var (
	scheduleModule = compare.Attr("ModuleName", func(s domain.Schedule) string { return canonical.OptionalString(s.ModuleName) })
	scheduleName   = compare.Attr(domain.AttrName, func(s domain.Schedule) string { return s.Name })
)

var scheduleAttributes = []compare.Attribute[domain.Schedule]{
	compare.Attr(domain.AttrID, func(s domain.Schedule) string { return canonical.Int(s.ID) }),
	scheduleName,
	compare.Attr(domain.AttrGUID, func(s domain.Schedule) string { return canonical.OptionalString(s.GUID) }),
	scheduleModule,
	compare.Attr("IsActive", func(s domain.Schedule) string { return canonical.Bool(s.IsActive) }),
	compare.Attr("Frequency", func(s domain.Schedule) string { return canonical.OptionalString(s.Frequency) }),
}

func NewScheduleComparer(ignore ...string) *helper.KeyedComparer[domain.Schedule] {
	return helper.NewKeyedComparer(
		domain.CategorySchedule,
		func(s *domain.Snapshot) []domain.Schedule { return s.Schedules },
		compare.Spec[domain.Schedule]{
			Key:        compare.CompositeKey([]compare.Attribute[domain.Schedule]{scheduleModule, scheduleName}, scheduleName.Name),
			Attributes: scheduleAttributes,
			Excluded:   helper.BaseExclusions(ignore...),
		},
		helper.KeyLabels[domain.Schedule](true),
		helper.SeverityPolicy{
			SourceOnly: domain.SeverityWarning,
			TargetOnly: domain.SeverityInfo,
			Mismatch:   domain.SeverityInfo,
		},
	)
}
