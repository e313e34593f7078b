// Package errors は変換処理全体のエラーハンドリングと警告システムを提供します。
// LightGBMの木セクションを読み込み、PMMLへ変換する際の失敗を型付きエラーとして表現します。
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	グローバル警告ハンドリング
//
// ===========================================================================
var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		// デフォルトのハンドラは標準エラー出力にログを出す
		log.Printf("lgbmpmml-Warning: %v\n", w)
	}
	// zerologロガー（循環importを避けるため遅延初期化）
	zerologWarnFunc func(warning error)
)

// SetWarningHandler は警告ハンドラを設定します。
// RecordCountWarningなどの警告の処理方法を制御できます。
//
// 例:
//
//	errors.SetWarningHandler(func(w error) {
//	    // 警告を無視する
//	})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc はzerolog警告関数を設定します（循環importを避けるため）。
// nilを渡すと従来のハンドラに戻ります。
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn は警告を発生させます。
// zerologが利用可能な場合は構造化ログとして出力し、そうでなければ従来のハンドラを使用します。
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}

	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	警告型
//
// ===========================================================================

// RecordCountWarning は根ノードのレコード数と葉のレコード数の合計が一致しない場合の警告です。
// 変換自体は継続されます。
type RecordCountWarning struct {
	Tree     int
	Internal int
	Leaves   int
}

func (w *RecordCountWarning) Error() string {
	return fmt.Sprintf("tree %d: root internal_count %d does not match leaf_count total %d", w.Tree, w.Internal, w.Leaves)
}

// MarshalZerologObject はzerologのイベントに構造化された警告情報を追加します。
func (w *RecordCountWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Int("tree", w.Tree).
		Int("internal_count", w.Internal).
		Int("leaf_count_total", w.Leaves).
		Str("type", "RecordCountWarning")
}

// NewRecordCountWarning は新しいRecordCountWarningを作成します。
func NewRecordCountWarning(tree, internal, leaves int) *RecordCountWarning {
	return &RecordCountWarning{Tree: tree, Internal: internal, Leaves: leaves}
}

// ===========================================================================
//
//	構造化されたエラー型
//
// ===========================================================================

var (
	// ErrFormat は入力セクションが不正な場合のエラーです。
	ErrFormat = New("malformed tree section")

	// ErrInvalidSplit はバイナリ特徴量の分割点が0.5でない場合のエラーです。
	ErrInvalidSplit = New("invalid split")

	// ErrMissingFeature は特徴量インデックスが特徴量テーブルの範囲外の場合のエラーです。
	ErrMissingFeature = New("missing feature")
)

// FormatError は配列長の不一致、キーの欠落、葉数が正でない場合などの入力不正を示します。
type FormatError struct {
	Key    string
	Reason string
}

func (e *FormatError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("lgbmpmml: format error in %q: %s", e.Key, e.Reason)
	}
	return fmt.Sprintf("lgbmpmml: format error: %s", e.Reason)
}

// Is はErrFormatとの比較を可能にします。
func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *FormatError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("key", e.Key).
		Str("reason", e.Reason).
		Str("type", "FormatError")
}

// NewFormatError は新しいFormatErrorを作成し、スタックトレースを付与します。
func NewFormatError(key, reason string) error {
	return errors.WithStack(&FormatError{Key: key, Reason: reason})
}

// NewFormatErrorf はフォーマット文字列からFormatErrorを作成します。
func NewFormatErrorf(key, format string, args ...interface{}) error {
	return errors.WithStack(&FormatError{Key: key, Reason: fmt.Sprintf(format, args...)})
}

// LengthMismatchError は配列の要素数が期待値と異なる場合のFormatErrorを作成します。
func LengthMismatchError(key string, expected, got int) error {
	return NewFormatErrorf(key, "expected %d elements, got %d", expected, got)
}

// InvalidSplitError はバイナリ特徴量が0.5以外の閾値で分割されている場合のエラーです。
type InvalidSplitError struct {
	Node      int
	Feature   string
	Threshold float64
}

func (e *InvalidSplitError) Error() string {
	return fmt.Sprintf("lgbmpmml: node %d: binary feature %q split at %v, expected 0.5", e.Node, e.Feature, e.Threshold)
}

// Is はErrInvalidSplitとの比較を可能にします。
func (e *InvalidSplitError) Is(target error) bool {
	return target == ErrInvalidSplit
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *InvalidSplitError) MarshalZerologObject(event *zerolog.Event) {
	event.Int("node", e.Node).
		Str("feature", e.Feature).
		Float64("threshold", e.Threshold).
		Str("type", "InvalidSplitError")
}

// NewInvalidSplitError は新しいInvalidSplitErrorを作成し、スタックトレースを付与します。
func NewInvalidSplitError(node int, feature string, threshold float64) error {
	return errors.WithStack(&InvalidSplitError{Node: node, Feature: feature, Threshold: threshold})
}

// MissingFeatureError は分割が特徴量テーブルの範囲外のインデックスを参照している場合のエラーです。
type MissingFeatureError struct {
	Node  int
	Index int
	Count int
}

func (e *MissingFeatureError) Error() string {
	if e.Node < 0 {
		return fmt.Sprintf("lgbmpmml: feature index %d out of range [0, %d)", e.Index, e.Count)
	}
	return fmt.Sprintf("lgbmpmml: node %d: feature index %d out of range [0, %d)", e.Node, e.Index, e.Count)
}

// Is はErrMissingFeatureとの比較を可能にします。
func (e *MissingFeatureError) Is(target error) bool {
	return target == ErrMissingFeature
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *MissingFeatureError) MarshalZerologObject(event *zerolog.Event) {
	event.Int("node", e.Node).
		Int("index", e.Index).
		Int("count", e.Count).
		Str("type", "MissingFeatureError")
}

// NewMissingFeatureError は新しいMissingFeatureErrorを作成し、スタックトレースを付与します。
// ノードが不明な場合はnodeに-1を渡します。
func NewMissingFeatureError(node, index, count int) error {
	return errors.WithStack(&MissingFeatureError{Node: node, Index: index, Count: count})
}

// ConversionError はアンサンブル内の特定の木の変換に失敗したことを示します。
type ConversionError struct {
	Tree int
	Err  error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("lgbmpmml: tree %d: %v", e.Tree, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *ConversionError) MarshalZerologObject(event *zerolog.Event) {
	event.Int("tree", e.Tree).
		AnErr("cause", e.Err).
		Str("type", "ConversionError")
}

// NewConversionError は新しいConversionErrorを作成し、スタックトレースを付与します。
func NewConversionError(tree int, err error) error {
	return errors.WithStack(&ConversionError{Tree: tree, Err: err})
}

// Kind はメトリクスやログ用にエラーの種類を短い文字列で返します。
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case Is(err, ErrFormat):
		return "format"
	case Is(err, ErrInvalidSplit):
		return "invalid_split"
	case Is(err, ErrMissingFeature):
		return "missing_feature"
	}
	var panicErr *PanicError
	if As(err, &panicErr) {
		return "panic"
	}
	return "other"
}

// ===========================================================================
//
//	cockroachdb/errors ラッパー関数
//
// ===========================================================================

// Is はエラーが特定のターゲットエラーかどうかを判定します。
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As はエラーが特定の型にキャスト可能かどうかを判定します。
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap は既存のエラーをメッセージ付きでラップします。
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf は既存のエラーをフォーマット文字列でラップします。
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New は新しいエラーを作成します。
func New(message string) error {
	return errors.New(message)
}

// Newf は新しいフォーマット済みエラーを作成します。
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack はエラーにスタックトレースを付与します。
func WithStack(err error) error {
	return errors.WithStack(err)
}
