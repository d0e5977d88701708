package models

import "time"

// SeedNotifications returns the sample notifications the dashboard starts
// with. Timestamps are relative to now so the list looks fresh on boot.
func SeedNotifications(now time.Time) []Notification {
	return []Notification{
		{
			ID:        "1",
			Title:     "مرحباً بك في لوحة التحكم",
			Body:      "تم تفعيل لوحة التحكم بنجاح. يمكنك الآن إدارة الإشعارات والمستودعات.",
			Type:      "general",
			Priority:  "medium",
			CreatedAt: now.Add(-2 * time.Hour),
			Sent:      true,
		},
		{
			ID:        "2",
			Title:     "تحديث النظام",
			Body:      "تم تحديث النظام إلى الإصدار الجديد مع تحسينات في الأداء.",
			Type:      "update",
			Priority:  "high",
			CreatedAt: now.Add(-24 * time.Hour),
			Sent:      true,
		},
	}
}

// SeedRepositories returns the sample repositories the dashboard starts with.
func SeedRepositories(now time.Time) []Repository {
	return []Repository{
		{
			ID:          "1",
			Name:        "مستودع المانجا الرئيسي",
			URL:         "https://example.com/manga-repo",
			Description: "المستودع الرئيسي لمصادر المانجا",
			IsActive:    true,
			SourceCount: 150,
			LastUpdated: now.Add(-6 * time.Hour),
		},
		{
			ID:          "2",
			Name:        "مستودع المانجا الثانوي",
			URL:         "https://example.com/manga-repo-2",
			Description: "مستودع إضافي للمصادر الجديدة",
			IsActive:    false,
			SourceCount: 75,
			LastUpdated: now.Add(-12 * time.Hour),
		},
	}
}
