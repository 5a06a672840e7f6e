// Package naming derives boundary symbol names.
//
// BaseName builds the undecorated symbol of one native function for one
// allocation place. Functions whose base names collide within a scope are
// overloads; Disambiguate resolves a whole colliding group at once by
// trying caption strategies in a fixed order until every member gets a
// distinct caption. The first strategy that works is applied to every
// member, so the result only depends on the group and its order.
//
// AssignNames does both for a batch of candidates in discovery order and
// reports failures per candidate. Functions named by earlier runs keep
// their names; an overload found later is captioned against them.
package naming
