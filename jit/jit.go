// Package jit turns an emitted C translation unit into callable
// function and derivative pointers by shelling out to the system C
// compiler and dynamically loading the resulting shared object. Go's
// plugin package only loads objects built by `go build -buildmode=plugin`,
// so an object produced by `cc` must instead go through libdl directly.
package jit

/*
#cgo LDFLAGS: -ldl
#include <dlfcn.h>
#include <stdlib.h>
#include <complex.h>

typedef double complex (*newtongen_fn)(double complex);

static double complex newtongen_call(newtongen_fn f, double complex z) {
	return f(z);
}
*/
import "C"

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"unsafe"

	"github.com/golang/glog"
	"github.com/nfractal/newtongen/newton"
)

// FuncName and DerivName are the symbol names expr.EmitC gives the
// generated function and its derivative (spec.md §6).
const (
	FuncName  = "func"
	DerivName = "diff"
)

// Module is a compiled-and-loaded shared object exposing the function
// and its derivative as callable Go closures. The underlying library
// handle is kept open for the Module's lifetime; Close must be called
// to release it and remove the backing temporary files.
type Module struct {
	handle unsafe.Pointer
	objDir string

	Func  func(complex128) complex128
	Deriv func(complex128) complex128
}

// Compile writes src to a temporary .c file, invokes the system C
// compiler to produce a shared object, and loads it via dlopen. The
// returned Module owns its temporary directory; callers must call
// Close when done.
func Compile(src string) (*Module, error) {
	dir, err := os.MkdirTemp("", "newtongen-jit-")
	if err != nil {
		return nil, newton.Wrap(newton.Io, err)
	}

	srcPath := filepath.Join(dir, "expr.c")
	ofilePath := filepath.Join(dir, "expr.o")
	objPath := filepath.Join(dir, "expr.so")

	if err := os.WriteFile(srcPath, []byte(src), 0o600); err != nil {
		os.RemoveAll(dir)
		return nil, newton.Wrap(newton.Io, err)
	}

	glog.V(1).Infof("jit: compiling %s", srcPath)
	compile := exec.Command("cc", "-O3", "-fPIC", "-c", "-o", ofilePath, srcPath)
	if out, err := compile.CombinedOutput(); err != nil {
		os.RemoveAll(dir)
		return nil, newton.Wrap(newton.JitCompile, fmt.Errorf("cc: %w: %s", err, out))
	}

	glog.V(1).Infof("jit: linking %s", objPath)
	link := exec.Command("cc", "-shared", "-o", objPath, ofilePath, "-lm")
	if out, err := link.CombinedOutput(); err != nil {
		os.RemoveAll(dir)
		return nil, newton.Wrap(newton.JitCompile, fmt.Errorf("cc: %w: %s", err, out))
	}

	m, err := load(objPath)
	if err != nil {
		os.RemoveAll(dir)
		return nil, err
	}
	m.objDir = dir
	return m, nil
}

func load(objPath string) (*Module, error) {
	cPath := C.CString(objPath)
	defer C.free(unsafe.Pointer(cPath))

	handle := C.dlopen(cPath, C.RTLD_NOW)
	if handle == nil {
		return nil, newton.Wrap(newton.JitLoad, fmt.Errorf("dlopen: %s", C.GoString(C.dlerror())))
	}

	fn, err := symbol(handle, FuncName)
	if err != nil {
		C.dlclose(handle)
		return nil, err
	}
	deriv, err := symbol(handle, DerivName)
	if err != nil {
		C.dlclose(handle)
		return nil, err
	}

	m := &Module{handle: handle}
	m.Func = func(z complex128) complex128 { return callSymbol(fn, z) }
	m.Deriv = func(z complex128) complex128 { return callSymbol(deriv, z) }
	return m, nil
}

func symbol(handle unsafe.Pointer, name string) (unsafe.Pointer, error) {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))

	C.dlerror() // clear any existing error
	sym := C.dlsym(handle, cName)
	if errStr := C.dlerror(); errStr != nil {
		return nil, newton.Wrap(newton.JitSymbol, fmt.Errorf("dlsym(%s): %s", name, C.GoString(errStr)))
	}
	return sym, nil
}

func callSymbol(sym unsafe.Pointer, z complex128) complex128 {
	fn := C.newtongen_fn(sym)
	r := C.newtongen_call(fn, C.complexdouble(z))
	return complex128(r)
}

// Close unloads the shared object and removes its temporary files.
// Closing a Module invalidates its Func and Deriv closures; callers
// must not invoke them afterward. Safe to call from any goroutine,
// but must only be called once all in-flight Func/Deriv calls have
// returned — the render workers are the only other users of this
// Module and they are joined before Close runs.
func (m *Module) Close() error {
	if m.handle != nil {
		C.dlclose(m.handle)
		m.handle = nil
	}
	if m.objDir != "" {
		os.RemoveAll(m.objDir)
		m.objDir = ""
	}
	return nil
}
