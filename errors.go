package dashboard

import (
	"github.com/luno/jettison/errors"
	"github.com/luno/jettison/j"
)

var (
	ErrUnknownStatus       = errors.New("status is not defined in the workflow definition", j.C("ERR_8c1f4a2b9e0d73aa"))
	ErrUnknownColumn       = errors.New("column key is not part of the record schema", j.C("ERR_4be91d03c2a7f516"))
	ErrIllegalTransition   = errors.New("status is not reachable from the record's current status", j.C("ERR_0d2a6ef18b34c97d"))
	ErrInsufficientRole    = errors.New("actor role does not meet the role required for the status", j.C("ERR_73c5091dfae284b0"))
	ErrStaleRecord         = errors.New("record changed since the transition was proposed", j.C("ERR_e61b8d24a90f35c7"))
	ErrRecordNotFound      = errors.New("record not found", j.C("ERR_1fa4c87e52d0b693"))
	ErrDuplicateStatus     = errors.New("status code declared more than once", j.C("ERR_b925e70c61d4af38"))
	ErrOrphanStatus        = errors.New("status does not belong to a declared stage group", j.C("ERR_57d30b6f9c82e1a4"))
	ErrDanglingTransition  = errors.New("transition targets an undefined status", j.C("ERR_a80f36d1e5c4927b"))
	ErrNoEntryStatus       = errors.New("workflow definition has no entry status", j.C("ERR_6e49a2c50d81f3b7"))
	ErrStageRegression     = errors.New("transition moves to an earlier stage group", j.C("ERR_2c7d81f09b465ea3"))
	ErrNetwork             = errors.New("load or save collaborator failed", j.C("ERR_91b0e5a7d3f824c6"))
	ErrValidation          = errors.New("record rejected by save validation", j.C("ERR_dd4872b1a6530e9f"))
)
