package sqlitedb

type ClickEvent struct {
	ID        string
	Code      string
	ClickedAt int64
	Source    string
	Location  string
	Device    string
}

type RetiredCode struct {
	Code      string
	RetiredAt int64
}

type ShortLink struct {
	ID          int64
	Code        string
	OriginalUrl string
	CreatedAt   int64
}
