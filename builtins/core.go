/*
File   : cloudy/builtins/core.go
Package: builtins
*/
package builtins

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"

	"github.com/nandu-not-bot/cloudy/cerr"
	"github.com/nandu-not-bot/cloudy/value"
)

func init() {
	register(&Spec{Name: "print", ArgNames: []string{"value"}, Fn: builtinPrint})
	register(&Spec{Name: "print_ret", ArgNames: []string{"value"}, Fn: builtinPrintRet})
	register(&Spec{Name: "input", ArgNames: nil, Fn: builtinInput})
	register(&Spec{Name: "input_int", ArgNames: nil, Fn: builtinInputInt})
	register(&Spec{Name: "clear", ArgNames: nil, Fn: builtinClear})
	register(&Spec{Name: "is_number", ArgNames: []string{"value"}, Fn: isType(func(v value.Value) bool {
		switch v.(type) {
		case *value.Int, *value.Float:
			return true
		}
		return false
	})})
	register(&Spec{Name: "is_string", ArgNames: []string{"value"}, Fn: isType(func(v value.Value) bool {
		_, ok := v.(*value.String)
		return ok
	})})
	register(&Spec{Name: "is_bool", ArgNames: []string{"value"}, Fn: isType(func(v value.Value) bool {
		_, ok := v.(*value.Bool)
		return ok
	})})
	register(&Spec{Name: "is_list", ArgNames: []string{"value"}, Fn: isType(func(v value.Value) bool {
		_, ok := v.(*value.List)
		return ok
	})})
	register(&Spec{Name: "is_function", ArgNames: []string{"value"}, Fn: isType(func(v value.Value) bool {
		t := v.Type()
		return t == value.TypeFunction
	})})
	register(&Spec{Name: "append", ArgNames: []string{"list", "value"}, Fn: builtinAppend})
	register(&Spec{Name: "pop", ArgNames: []string{"list", "index"}, Fn: builtinPop})
	register(&Spec{Name: "extend", ArgNames: []string{"list1", "list2"}, Fn: builtinExtend})
	register(&Spec{Name: "len", ArgNames: []string{"value"}, Fn: builtinLen})
	register(&Spec{Name: "type", ArgNames: []string{"value"}, Fn: builtinType})
	register(&Spec{Name: "run", ArgNames: []string{"filename"}, Fn: builtinRun})
}

func builtinPrint(ctx *value.Context) (value.Value, *cerr.Error) {
	fmt.Fprintln(Stdout, arg(ctx, "value").String())
	return value.NewNull(), nil
}

func builtinPrintRet(ctx *value.Context) (value.Value, *cerr.Error) {
	return value.NewString(arg(ctx, "value").String()), nil
}

func builtinInput(ctx *value.Context) (value.Value, *cerr.Error) {
	line, _ := Stdin.ReadString('\n')
	return value.NewString(strings.TrimRight(line, "\r\n")), nil
}

func builtinInputInt(ctx *value.Context) (value.Value, *cerr.Error) {
	for {
		line, _ := Stdin.ReadString('\n')
		line = strings.TrimSpace(line)
		n, err := strconv.ParseInt(line, 10, 64)
		if err == nil {
			return value.NewInt(n), nil
		}
		fmt.Fprintln(Stdout, "Invalid input, expected an integer. Try again!")
	}
}

func builtinClear(ctx *value.Context) (value.Value, *cerr.Error) {
	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.Command("cmd", "/c", "cls")
	} else {
		cmd = exec.Command("clear")
	}
	cmd.Stdout = os.Stdout
	_ = cmd.Run()
	return value.NewNull(), nil
}

func isType(pred func(value.Value) bool) func(ctx *value.Context) (value.Value, *cerr.Error) {
	return func(ctx *value.Context) (value.Value, *cerr.Error) {
		return value.NewBool(pred(arg(ctx, "value"))), nil
	}
}

func builtinAppend(ctx *value.Context) (value.Value, *cerr.Error) {
	l, ok := arg(ctx, "list").(*value.List)
	if !ok {
		return nil, typeMismatch(arg(ctx, "list"), "a list as first argument")
	}
	l.Append(arg(ctx, "value"))
	return value.NewNull(), nil
}

func builtinPop(ctx *value.Context) (value.Value, *cerr.Error) {
	l, ok := arg(ctx, "list").(*value.List)
	if !ok {
		return nil, typeMismatch(arg(ctx, "list"), "a list as first argument")
	}
	idx, ok := arg(ctx, "index").(*value.Int)
	if !ok {
		return nil, typeMismatch(arg(ctx, "index"), "an int as second argument")
	}
	return l.Pop(int(idx.Val))
}

func builtinExtend(ctx *value.Context) (value.Value, *cerr.Error) {
	l1, ok := arg(ctx, "list1").(*value.List)
	if !ok {
		return nil, typeMismatch(arg(ctx, "list1"), "a list as first argument")
	}
	l2, ok := arg(ctx, "list2").(*value.List)
	if !ok {
		return nil, typeMismatch(arg(ctx, "list2"), "a list as second argument")
	}
	l1.Extend(l2)
	return value.NewNull(), nil
}

func builtinLen(ctx *value.Context) (value.Value, *cerr.Error) {
	v := arg(ctx, "value")
	switch val := v.(type) {
	case *value.String:
		return value.NewInt(int64(val.Len())), nil
	case *value.List:
		return value.NewInt(int64(val.Len())), nil
	case *value.Dict:
		return value.NewInt(int64(val.Len())), nil
	default:
		return nil, typeMismatch(v, "a string, list or dict argument")
	}
}

func builtinType(ctx *value.Context) (value.Value, *cerr.Error) {
	return value.NewString(arg(ctx, "value").Type()), nil
}

func builtinRun(ctx *value.Context) (value.Value, *cerr.Error) {
	name, ok := arg(ctx, "filename").(*value.String)
	if !ok {
		return nil, typeMismatch(arg(ctx, "filename"), "a string filename")
	}
	if RunCallback == nil {
		return nil, typeMismatch(name, "run() is unavailable in this context")
	}
	return RunCallback(name.Val)
}
