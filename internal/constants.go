/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import "time"

const (
	UserAgent          = "teetimes/0.2.0 (+https://github.com/mikeb26/teetimes)"
	WebCacheBucket     = "teetimes-prod-webcache"
	EphemerisBaseURL   = "https://www.timeanddate.com/sun"
	EphemerisCacheTTL  = 7 * 24 * time.Hour
	EnvPrefix          = "TEETIMES"
	DiscordMaxResponse = 2000
)
