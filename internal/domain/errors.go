package domain

import "errors"

var (
	// ErrInvalidRequest は呼び出し元の入力不備です。
	ErrInvalidRequest = errors.New("invalid request")
	// ErrConfiguration はデプロイ環境の設定不備です。
	ErrConfiguration = errors.New("configuration error")
	// ErrJob は生成 API がジョブの失敗を報告したことを表します。
	ErrJob = errors.New("job failed")
	// ErrMalformedLocation は結果ペイロードや URI の形式が想定外であることを表します。
	ErrMalformedLocation = errors.New("malformed storage location")
	// ErrSigning は署名付き URL の発行に失敗したことを表します。
	ErrSigning = errors.New("signing failed")
	// ErrPollLimit はポーリング回数の上限に達したことを表します。
	ErrPollLimit = errors.New("poll limit reached")
)

// JobError は外部 API が返したエラーメッセージをそのまま保持します。
type JobError struct {
	JobName string
	Message string
}

func (e *JobError) Error() string {
	return e.Message
}

func (e *JobError) Unwrap() error {
	return ErrJob
}
