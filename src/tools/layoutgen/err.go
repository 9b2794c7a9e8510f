package layoutgen

import "errors"

var ErrPageSize = errors.New("board page size does not match the layout model")
