// Package i18n provides localized display strings for the overlay
// and settings surfaces. Supported languages are Japanese, English,
// Simplified Chinese, and Traditional Chinese; unknown preferences
// fall back to Japanese via BCP 47 matching.
package i18n
