package response

import (
	"tickit/internal/domain/money"

	"github.com/jinzhu/copier"
)

// Money leaves the API as a decimal string ("45.00").
var moneyToString = copier.TypeConverter{
	SrcType: money.Money{},
	DstType: copier.String,
	Fn: func(src any) (any, error) {
		return src.(money.Money).String(), nil
	},
}

var copyOpt = copier.Option{
	Converters: []copier.TypeConverter{moneyToString},
}

func copyInto(dst, src any) {
	// field sets are fixed at compile time, so a copy error is a programming bug
	if err := copier.CopyWithOption(dst, src, copyOpt); err != nil {
		panic("response mapping: " + err.Error())
	}
}
