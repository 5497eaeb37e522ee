package fssdomain

// ResultHeader carries the FISIS status code present on every response.
// "000" means success; anything else is an API-level failure.
type ResultHeader struct {
	ErrCd  string `json:"err_cd"`
	ErrMsg string `json:"err_msg"`
}

func (h ResultHeader) IsSuccess() bool {
	return h.ErrCd == "" || h.ErrCd == "000"
}
