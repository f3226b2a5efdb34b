// Package timezone provides timezone utilities for the application.
//
// Usage:
//
//	now := timezone.Now()                   // current time in app timezone
//	appTime := timezone.ToAppTime(t)        // convert any time to app timezone
//	in, err := timezone.Parse("2006-01-02T15:04:05", "2025-03-10T14:00:00")
//	out := timezone.Format(in, time.RFC3339)
//
// The timezone is configured via the APP_TIMEZONE environment variable and is
// initialized when the package is imported. Use standard IANA names such as
// "UTC", "Asia/Kolkata" or "America/New_York".
package timezone
