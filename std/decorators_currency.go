/*
File    : exprscript/std/decorators_currency.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package std - decorators_currency.go
// Currency decorators (`@usd @eur @gbp ...`), grounded on
// original_source/src/functions/stdlib/decorators_currency.rs. Each
// coerces its argument to value.Fixed and formats it with the currency's
// symbol and minor-unit count via shopspring/decimal's StringFixed.
package std

import (
	"github.com/akashmaji946/exprscript/state"
	"github.com/akashmaji946/exprscript/value"
)

func currencyDecorator(name, symbol string, minorUnits int32, doc string) state.FuncEntry {
	return state.FuncEntry{
		Name: name, Category: "Decorator", Doc: doc, IsDecorator: true,
		Params:     []state.Param{{Name: "input", Type: value.TFixed}},
		ReturnType: value.TString,
		Handler: func(st *state.State, args []value.Value) (value.Value, error) {
			amount := args[0].AsFixed()
			return value.String(symbol + amount.StringFixed(minorUnits)), nil
		},
	}
}

func currencyDecorators() []state.FuncEntry {
	return []state.FuncEntry{
		currencyDecorator("usd", "$", 2, "@usd interprets a number as a USD amount: a dollar sign and two decimal places."),
		currencyDecorator("eur", "€", 2, "@eur interprets a number as a Euro amount: a euro sign and two decimal places."),
		currencyDecorator("gbp", "£", 2, "@gbp interprets a number as a GBP amount: a pound sign and two decimal places."),
		currencyDecorator("cad", "$", 2, "@cad interprets a number as a CAD amount: a dollar sign and two decimal places."),
		currencyDecorator("aud", "$", 2, "@aud interprets a number as a AUD amount: a dollar sign and two decimal places."),
		currencyDecorator("jpy", "¥", 0, "@jpy interprets a number as a JPY amount: a yen sign and no decimal places."),
	}
}
