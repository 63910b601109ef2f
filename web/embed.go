// Package web содержит встраиваемые HTML-шаблоны дашборда.
package web

import "embed"

// TemplatesFS встраивает шаблоны серверного рендеринга.
//
//go:embed templates/*.html
var TemplatesFS embed.FS
