// Package platform defines the wire types exchanged with the CPD Events
// backend. The backend owns validation and lifecycle for all of these;
// the client holds transient copies and does optional-field shaping only.
package platform
