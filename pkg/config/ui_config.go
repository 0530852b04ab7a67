package config

import "image/color"

// 窗口与 UI 布局相关的常量配置

// Window dimensions (logical pixels at startup; the window is resizable
// and the drawing surface follows the actual window size).
const (
	WindowWidth  = 960
	WindowHeight = 600
)

// Theme colors. The background is a deep navy so the dim particles and
// connection lines read as an ambient layer under the UI.
var (
	// BackgroundColor 背景填充色
	BackgroundColor = color.RGBA{R: 10, G: 15, B: 28, A: 255}

	// ParticleColor 粒子基础色（每个粒子应用自身的 alpha）
	ParticleColor = color.RGBA{R: 99, G: 226, B: 208, A: 255}

	// LineColor 粒子连线基础色
	LineColor = color.RGBA{R: 99, G: 226, B: 208, A: 255}

	// AccentColor 按钮和高亮文字颜色
	AccentColor = color.RGBA{R: 56, G: 189, B: 248, A: 255}

	// TextColor 正文文字颜色
	TextColor = color.RGBA{R: 226, G: 232, B: 240, A: 255}

	// MutedTextColor 次要文字颜色
	MutedTextColor = color.RGBA{R: 130, G: 140, B: 160, A: 255}
)

// Verdict badge colors shown on the result view.
var (
	VerdictCleanColor      = color.RGBA{R: 74, G: 222, B: 128, A: 255}
	VerdictSuspiciousColor = color.RGBA{R: 250, G: 204, B: 21, A: 255}
	VerdictMaliciousColor  = color.RGBA{R: 248, G: 113, B: 113, A: 255}
)

// 主按钮尺寸
//
// 调整指南：
//   - 按钮以水平居中布局，只需调整宽高
//   - 点击区域在四周扩展 ButtonClickPadding 像素
const (
	ButtonWidth  = 180.0
	ButtonHeight = 44.0

	// ButtonClickPadding 按钮点击区域扩展（像素）
	ButtonClickPadding = 6.0
)

// URL 输入框尺寸
const (
	InputFieldWidth  = 460.0
	InputFieldHeight = 44.0

	// MaxURLLength 输入框接受的最大 URL 长度
	MaxURLLength = 256
)
