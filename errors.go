/*
 * errors.go, part of polygen.
 *
 * Copyright 2026 The polygen authors.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package chem

import (
	"errors"
	"fmt"
	"strings"
)

//Kinds of failure. Errors returned by this package wrap one of these,
//so they can be checked with errors.Is.
var (
	ErrFileNotFound      = errors.New("file not found")
	ErrMalformedRecord   = errors.New("malformed record")
	ErrAtomCountMismatch = errors.New("atom count mismatch")
	ErrUnknownElement    = errors.New("unknown element")
	ErrNegativeCutoff    = errors.New("render cutoff must be a non-negative number")
	ErrBondFactor        = errors.New("bond factor must be a positive number")
	ErrAngleRange        = errors.New("viewing angle out of range")
	ErrUnloaded          = errors.New("no molecule loaded")
)

//CError is the error type of the chem package. It carries the kind of
//failure, the file and line where it happened (if any), the original cause
//and a decoration trail with the functions it went through.
type CError struct {
	msg      string
	kind     error
	cause    error
	filename string
	line     int //1-based, 0 means no line.
	deco     []string
}

func newError(kind error, msg string, caller string) *CError {
	return &CError{msg: msg, kind: kind, deco: []string{caller}}
}

//inFile attaches a file name and a line to the error and returns it.
func (err *CError) inFile(filename string, line int) *CError {
	err.filename = filename
	err.line = line
	return err
}

//Error returns a string with an error message.
func (err *CError) Error() string {
	var b strings.Builder
	b.WriteString("polygen: ")
	if err.filename != "" {
		b.WriteString(err.filename)
		if err.line > 0 {
			fmt.Fprintf(&b, ":%d", err.line)
		}
		b.WriteString(": ")
	}
	if err.kind != nil {
		b.WriteString(err.kind.Error())
		if err.msg != "" {
			b.WriteString(": ")
		}
	}
	b.WriteString(err.msg)
	if err.cause != nil {
		fmt.Fprintf(&b, " (%v)", err.cause)
	}
	return b.String()
}

//Decorate adds dec to the decoration slice of the error
//and returns the resulting slice. An empty dec just returns the current slice.
func (err *CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Unwrap exposes both the kind and the cause of the error to errors.Is and errors.As.
func (err *CError) Unwrap() []error {
	ret := make([]error, 0, 2)
	if err.kind != nil {
		ret = append(ret, err.kind)
	}
	if err.cause != nil {
		ret = append(ret, err.cause)
	}
	return ret
}

//Kind returns the sentinel error describing the failure, or nil.
func (err *CError) Kind() error { return err.kind }

//FileName returns the file that caused the error, or an empty string.
func (err *CError) FileName() string { return err.filename }

//Line returns the 1-based line of the file where the error was found, or 0.
func (err *CError) Line() int { return err.line }

//errDecorate adds the caller's name to err, if err is a chem.Error,
//and returns it. Other errors are returned unchanged.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(Error); ok {
		e.Decorate(caller)
	}
	return err
}
