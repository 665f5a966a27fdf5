package domain

import "time"

// JobStatus は外部の動画生成ジョブの状態を表します。
type JobStatus string

const (
	JobStatusPending JobStatus = "pending"
	JobStatusDone    JobStatus = "done"
)

// GenerationRequest は動画生成 API に投入する1回分のリクエストです。
// 呼び出しごとに生成され、生成後は変更されません。
type GenerationRequest struct {
	Model       string
	Prompt      string
	AspectRatio string
	// OutputURI は生成物の書き込み先 (gs://bucket/prefix/) です。
	OutputURI string
	// DurationSeconds が 0 の場合は API 側のデフォルト長を使用します。
	DurationSeconds int32
}

// Job は外部 API が所有する生成ジョブのスナップショットです。
// Status が done になった時点で終端となり、以降は再取得されません。
type Job struct {
	// Name は外部 API が払い出した不透明なオペレーション名です。
	Name   string
	Status JobStatus
	// State はメタデータ上の進捗ラベルで、ログ出力のためだけに使用します。
	State string
	// ResultURI は最初に生成された動画の保存先 (gs://...) です。
	ResultURI string
	// Error は外部 API が報告した失敗メッセージです。
	Error string
}

// Done はジョブが終端状態かどうかを返します。
func (j Job) Done() bool {
	return j.Status == JobStatusDone
}

// Failed は終端状態かつエラーが報告されているかを返します。
func (j Job) Failed() bool {
	return j.Done() && j.Error != ""
}

// SignedLink は期限付きでオブジェクトを取得できる署名付き URL です。
type SignedLink struct {
	URL       string
	ExpiresAt time.Time
}

// VideoResult は生成から署名までを終えた成果物をまとめたものです。
type VideoResult struct {
	Job      Job
	Location StorageLocation
	Link     SignedLink
}
