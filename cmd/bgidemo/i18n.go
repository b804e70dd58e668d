package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// App
		"Render BGI-style pictures to PNG":     "BGI風の画像をPNGに描画",
		"Log level (debug, info, warn, error)": "ログレベル (debug, info, warn, error)",
		"Suppress all log output":              "ログ出力をすべて抑制",
		"Error: %v":                            "エラー: %v",
		"unknown log level %q":                 "不明なログレベル %q",
		"Wrote %s (%dx%d)":                     "%s を書き出しました (%dx%d)",

		// Flags
		"Output PNG file path (- for standard output)": "出力PNGファイルパス（- で標準出力）",
		"Integer upscale factor of the output image":   "出力画像の整数拡大率",

		// Commands
		"Render a YAML scene to PNG":                 "YAMLシーンをPNGに描画",
		"Render the built-in demo picture":           "組み込みデモ画像を描画",
		"Render the 16x16 code page 437 glyph sheet": "コードページ437の16x16グリフ一覧を描画",
	})
}
