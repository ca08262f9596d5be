// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package laxjson

// ReaderState describes the reader's current position within the
// container/value structure of the input. It plays the role the "abstract
// JsonReader" base class's CurrentState property plays in the original
// design, folded directly into Reader since Go has no base class to
// delegate to.
type ReaderState byte

const (
	Start ReaderState = iota
	ObjectStart
	Object
	ArrayStart
	Array
	ConstructorStart
	Constructor
	Property
	PostValue
	Finished
	Closed
	Error
	Complete
)

var stateName = [...]string{
	Start:            "Start",
	ObjectStart:      "ObjectStart",
	Object:           "Object",
	ArrayStart:       "ArrayStart",
	Array:            "Array",
	ConstructorStart: "ConstructorStart",
	Constructor:      "Constructor",
	Property:         "Property",
	PostValue:        "PostValue",
	Finished:         "Finished",
	Closed:           "Closed",
	Error:            "Error",
	Complete:         "Complete",
}

func (s ReaderState) String() string {
	if int(s) < len(stateName) {
		return stateName[s]
	}
	return "Unknown"
}

// container identifies the kind of an open structural container on the
// reader's container stack.
type container byte

const (
	containerObject container = iota
	containerArray
	containerConstructor
)
