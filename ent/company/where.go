// Code generated by ent, DO NOT EDIT.

package company

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/specularhq/specular/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Company {
	return predicate.Company(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Company {
	return predicate.Company(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Company {
	return predicate.Company(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Company {
	return predicate.Company(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Company {
	return predicate.Company(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Company {
	return predicate.Company(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Company {
	return predicate.Company(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Company {
	return predicate.Company(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Company {
	return predicate.Company(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldName, v))
}

// Domain applies equality check predicate on the "domain" field. It's identical to DomainEQ.
func Domain(v string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldDomain, v))
}

// Industry applies equality check predicate on the "industry" field. It's identical to IndustryEQ.
func Industry(v string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldIndustry, v))
}

// SubIndustry applies equality check predicate on the "sub_industry" field. It's identical to SubIndustryEQ.
func SubIndustry(v string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldSubIndustry, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldDescription, v))
}

// OriginalDescription applies equality check predicate on the "original_description" field. It's identical to OriginalDescriptionEQ.
func OriginalDescription(v string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldOriginalDescription, v))
}

// FinalDescription applies equality check predicate on the "final_description" field. It's identical to FinalDescriptionEQ.
func FinalDescription(v string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldFinalDescription, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldCreatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Company {
	return predicate.Company(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Company {
	return predicate.Company(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Company {
	return predicate.Company(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Company {
	return predicate.Company(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Company {
	return predicate.Company(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Company {
	return predicate.Company(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Company {
	return predicate.Company(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Company {
	return predicate.Company(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Company {
	return predicate.Company(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Company {
	return predicate.Company(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Company {
	return predicate.Company(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Company {
	return predicate.Company(sql.FieldContainsFold(FieldName, v))
}

// DomainEQ applies the EQ predicate on the "domain" field.
func DomainEQ(v string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldDomain, v))
}

// DomainNEQ applies the NEQ predicate on the "domain" field.
func DomainNEQ(v string) predicate.Company {
	return predicate.Company(sql.FieldNEQ(FieldDomain, v))
}

// DomainIn applies the In predicate on the "domain" field.
func DomainIn(vs ...string) predicate.Company {
	return predicate.Company(sql.FieldIn(FieldDomain, vs...))
}

// DomainNotIn applies the NotIn predicate on the "domain" field.
func DomainNotIn(vs ...string) predicate.Company {
	return predicate.Company(sql.FieldNotIn(FieldDomain, vs...))
}

// DomainGT applies the GT predicate on the "domain" field.
func DomainGT(v string) predicate.Company {
	return predicate.Company(sql.FieldGT(FieldDomain, v))
}

// DomainGTE applies the GTE predicate on the "domain" field.
func DomainGTE(v string) predicate.Company {
	return predicate.Company(sql.FieldGTE(FieldDomain, v))
}

// DomainLT applies the LT predicate on the "domain" field.
func DomainLT(v string) predicate.Company {
	return predicate.Company(sql.FieldLT(FieldDomain, v))
}

// DomainLTE applies the LTE predicate on the "domain" field.
func DomainLTE(v string) predicate.Company {
	return predicate.Company(sql.FieldLTE(FieldDomain, v))
}

// DomainContains applies the Contains predicate on the "domain" field.
func DomainContains(v string) predicate.Company {
	return predicate.Company(sql.FieldContains(FieldDomain, v))
}

// DomainHasPrefix applies the HasPrefix predicate on the "domain" field.
func DomainHasPrefix(v string) predicate.Company {
	return predicate.Company(sql.FieldHasPrefix(FieldDomain, v))
}

// DomainHasSuffix applies the HasSuffix predicate on the "domain" field.
func DomainHasSuffix(v string) predicate.Company {
	return predicate.Company(sql.FieldHasSuffix(FieldDomain, v))
}

// DomainIsNil applies the IsNil predicate on the "domain" field.
func DomainIsNil() predicate.Company {
	return predicate.Company(sql.FieldIsNull(FieldDomain))
}

// DomainNotNil applies the NotNil predicate on the "domain" field.
func DomainNotNil() predicate.Company {
	return predicate.Company(sql.FieldNotNull(FieldDomain))
}

// DomainEqualFold applies the EqualFold predicate on the "domain" field.
func DomainEqualFold(v string) predicate.Company {
	return predicate.Company(sql.FieldEqualFold(FieldDomain, v))
}

// DomainContainsFold applies the ContainsFold predicate on the "domain" field.
func DomainContainsFold(v string) predicate.Company {
	return predicate.Company(sql.FieldContainsFold(FieldDomain, v))
}

// IndustryEQ applies the EQ predicate on the "industry" field.
func IndustryEQ(v string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldIndustry, v))
}

// IndustryNEQ applies the NEQ predicate on the "industry" field.
func IndustryNEQ(v string) predicate.Company {
	return predicate.Company(sql.FieldNEQ(FieldIndustry, v))
}

// IndustryIn applies the In predicate on the "industry" field.
func IndustryIn(vs ...string) predicate.Company {
	return predicate.Company(sql.FieldIn(FieldIndustry, vs...))
}

// IndustryNotIn applies the NotIn predicate on the "industry" field.
func IndustryNotIn(vs ...string) predicate.Company {
	return predicate.Company(sql.FieldNotIn(FieldIndustry, vs...))
}

// IndustryGT applies the GT predicate on the "industry" field.
func IndustryGT(v string) predicate.Company {
	return predicate.Company(sql.FieldGT(FieldIndustry, v))
}

// IndustryGTE applies the GTE predicate on the "industry" field.
func IndustryGTE(v string) predicate.Company {
	return predicate.Company(sql.FieldGTE(FieldIndustry, v))
}

// IndustryLT applies the LT predicate on the "industry" field.
func IndustryLT(v string) predicate.Company {
	return predicate.Company(sql.FieldLT(FieldIndustry, v))
}

// IndustryLTE applies the LTE predicate on the "industry" field.
func IndustryLTE(v string) predicate.Company {
	return predicate.Company(sql.FieldLTE(FieldIndustry, v))
}

// IndustryContains applies the Contains predicate on the "industry" field.
func IndustryContains(v string) predicate.Company {
	return predicate.Company(sql.FieldContains(FieldIndustry, v))
}

// IndustryHasPrefix applies the HasPrefix predicate on the "industry" field.
func IndustryHasPrefix(v string) predicate.Company {
	return predicate.Company(sql.FieldHasPrefix(FieldIndustry, v))
}

// IndustryHasSuffix applies the HasSuffix predicate on the "industry" field.
func IndustryHasSuffix(v string) predicate.Company {
	return predicate.Company(sql.FieldHasSuffix(FieldIndustry, v))
}

// IndustryIsNil applies the IsNil predicate on the "industry" field.
func IndustryIsNil() predicate.Company {
	return predicate.Company(sql.FieldIsNull(FieldIndustry))
}

// IndustryNotNil applies the NotNil predicate on the "industry" field.
func IndustryNotNil() predicate.Company {
	return predicate.Company(sql.FieldNotNull(FieldIndustry))
}

// IndustryEqualFold applies the EqualFold predicate on the "industry" field.
func IndustryEqualFold(v string) predicate.Company {
	return predicate.Company(sql.FieldEqualFold(FieldIndustry, v))
}

// IndustryContainsFold applies the ContainsFold predicate on the "industry" field.
func IndustryContainsFold(v string) predicate.Company {
	return predicate.Company(sql.FieldContainsFold(FieldIndustry, v))
}

// SubIndustryEQ applies the EQ predicate on the "sub_industry" field.
func SubIndustryEQ(v string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldSubIndustry, v))
}

// SubIndustryNEQ applies the NEQ predicate on the "sub_industry" field.
func SubIndustryNEQ(v string) predicate.Company {
	return predicate.Company(sql.FieldNEQ(FieldSubIndustry, v))
}

// SubIndustryIn applies the In predicate on the "sub_industry" field.
func SubIndustryIn(vs ...string) predicate.Company {
	return predicate.Company(sql.FieldIn(FieldSubIndustry, vs...))
}

// SubIndustryNotIn applies the NotIn predicate on the "sub_industry" field.
func SubIndustryNotIn(vs ...string) predicate.Company {
	return predicate.Company(sql.FieldNotIn(FieldSubIndustry, vs...))
}

// SubIndustryGT applies the GT predicate on the "sub_industry" field.
func SubIndustryGT(v string) predicate.Company {
	return predicate.Company(sql.FieldGT(FieldSubIndustry, v))
}

// SubIndustryGTE applies the GTE predicate on the "sub_industry" field.
func SubIndustryGTE(v string) predicate.Company {
	return predicate.Company(sql.FieldGTE(FieldSubIndustry, v))
}

// SubIndustryLT applies the LT predicate on the "sub_industry" field.
func SubIndustryLT(v string) predicate.Company {
	return predicate.Company(sql.FieldLT(FieldSubIndustry, v))
}

// SubIndustryLTE applies the LTE predicate on the "sub_industry" field.
func SubIndustryLTE(v string) predicate.Company {
	return predicate.Company(sql.FieldLTE(FieldSubIndustry, v))
}

// SubIndustryContains applies the Contains predicate on the "sub_industry" field.
func SubIndustryContains(v string) predicate.Company {
	return predicate.Company(sql.FieldContains(FieldSubIndustry, v))
}

// SubIndustryHasPrefix applies the HasPrefix predicate on the "sub_industry" field.
func SubIndustryHasPrefix(v string) predicate.Company {
	return predicate.Company(sql.FieldHasPrefix(FieldSubIndustry, v))
}

// SubIndustryHasSuffix applies the HasSuffix predicate on the "sub_industry" field.
func SubIndustryHasSuffix(v string) predicate.Company {
	return predicate.Company(sql.FieldHasSuffix(FieldSubIndustry, v))
}

// SubIndustryIsNil applies the IsNil predicate on the "sub_industry" field.
func SubIndustryIsNil() predicate.Company {
	return predicate.Company(sql.FieldIsNull(FieldSubIndustry))
}

// SubIndustryNotNil applies the NotNil predicate on the "sub_industry" field.
func SubIndustryNotNil() predicate.Company {
	return predicate.Company(sql.FieldNotNull(FieldSubIndustry))
}

// SubIndustryEqualFold applies the EqualFold predicate on the "sub_industry" field.
func SubIndustryEqualFold(v string) predicate.Company {
	return predicate.Company(sql.FieldEqualFold(FieldSubIndustry, v))
}

// SubIndustryContainsFold applies the ContainsFold predicate on the "sub_industry" field.
func SubIndustryContainsFold(v string) predicate.Company {
	return predicate.Company(sql.FieldContainsFold(FieldSubIndustry, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Company {
	return predicate.Company(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Company {
	return predicate.Company(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Company {
	return predicate.Company(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Company {
	return predicate.Company(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Company {
	return predicate.Company(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Company {
	return predicate.Company(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Company {
	return predicate.Company(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Company {
	return predicate.Company(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Company {
	return predicate.Company(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Company {
	return predicate.Company(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Company {
	return predicate.Company(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Company {
	return predicate.Company(sql.FieldContainsFold(FieldDescription, v))
}

// OriginalDescriptionEQ applies the EQ predicate on the "original_description" field.
func OriginalDescriptionEQ(v string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldOriginalDescription, v))
}

// OriginalDescriptionNEQ applies the NEQ predicate on the "original_description" field.
func OriginalDescriptionNEQ(v string) predicate.Company {
	return predicate.Company(sql.FieldNEQ(FieldOriginalDescription, v))
}

// OriginalDescriptionIn applies the In predicate on the "original_description" field.
func OriginalDescriptionIn(vs ...string) predicate.Company {
	return predicate.Company(sql.FieldIn(FieldOriginalDescription, vs...))
}

// OriginalDescriptionNotIn applies the NotIn predicate on the "original_description" field.
func OriginalDescriptionNotIn(vs ...string) predicate.Company {
	return predicate.Company(sql.FieldNotIn(FieldOriginalDescription, vs...))
}

// OriginalDescriptionGT applies the GT predicate on the "original_description" field.
func OriginalDescriptionGT(v string) predicate.Company {
	return predicate.Company(sql.FieldGT(FieldOriginalDescription, v))
}

// OriginalDescriptionGTE applies the GTE predicate on the "original_description" field.
func OriginalDescriptionGTE(v string) predicate.Company {
	return predicate.Company(sql.FieldGTE(FieldOriginalDescription, v))
}

// OriginalDescriptionLT applies the LT predicate on the "original_description" field.
func OriginalDescriptionLT(v string) predicate.Company {
	return predicate.Company(sql.FieldLT(FieldOriginalDescription, v))
}

// OriginalDescriptionLTE applies the LTE predicate on the "original_description" field.
func OriginalDescriptionLTE(v string) predicate.Company {
	return predicate.Company(sql.FieldLTE(FieldOriginalDescription, v))
}

// OriginalDescriptionContains applies the Contains predicate on the "original_description" field.
func OriginalDescriptionContains(v string) predicate.Company {
	return predicate.Company(sql.FieldContains(FieldOriginalDescription, v))
}

// OriginalDescriptionHasPrefix applies the HasPrefix predicate on the "original_description" field.
func OriginalDescriptionHasPrefix(v string) predicate.Company {
	return predicate.Company(sql.FieldHasPrefix(FieldOriginalDescription, v))
}

// OriginalDescriptionHasSuffix applies the HasSuffix predicate on the "original_description" field.
func OriginalDescriptionHasSuffix(v string) predicate.Company {
	return predicate.Company(sql.FieldHasSuffix(FieldOriginalDescription, v))
}

// OriginalDescriptionIsNil applies the IsNil predicate on the "original_description" field.
func OriginalDescriptionIsNil() predicate.Company {
	return predicate.Company(sql.FieldIsNull(FieldOriginalDescription))
}

// OriginalDescriptionNotNil applies the NotNil predicate on the "original_description" field.
func OriginalDescriptionNotNil() predicate.Company {
	return predicate.Company(sql.FieldNotNull(FieldOriginalDescription))
}

// OriginalDescriptionEqualFold applies the EqualFold predicate on the "original_description" field.
func OriginalDescriptionEqualFold(v string) predicate.Company {
	return predicate.Company(sql.FieldEqualFold(FieldOriginalDescription, v))
}

// OriginalDescriptionContainsFold applies the ContainsFold predicate on the "original_description" field.
func OriginalDescriptionContainsFold(v string) predicate.Company {
	return predicate.Company(sql.FieldContainsFold(FieldOriginalDescription, v))
}

// FinalDescriptionEQ applies the EQ predicate on the "final_description" field.
func FinalDescriptionEQ(v string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldFinalDescription, v))
}

// FinalDescriptionNEQ applies the NEQ predicate on the "final_description" field.
func FinalDescriptionNEQ(v string) predicate.Company {
	return predicate.Company(sql.FieldNEQ(FieldFinalDescription, v))
}

// FinalDescriptionIn applies the In predicate on the "final_description" field.
func FinalDescriptionIn(vs ...string) predicate.Company {
	return predicate.Company(sql.FieldIn(FieldFinalDescription, vs...))
}

// FinalDescriptionNotIn applies the NotIn predicate on the "final_description" field.
func FinalDescriptionNotIn(vs ...string) predicate.Company {
	return predicate.Company(sql.FieldNotIn(FieldFinalDescription, vs...))
}

// FinalDescriptionGT applies the GT predicate on the "final_description" field.
func FinalDescriptionGT(v string) predicate.Company {
	return predicate.Company(sql.FieldGT(FieldFinalDescription, v))
}

// FinalDescriptionGTE applies the GTE predicate on the "final_description" field.
func FinalDescriptionGTE(v string) predicate.Company {
	return predicate.Company(sql.FieldGTE(FieldFinalDescription, v))
}

// FinalDescriptionLT applies the LT predicate on the "final_description" field.
func FinalDescriptionLT(v string) predicate.Company {
	return predicate.Company(sql.FieldLT(FieldFinalDescription, v))
}

// FinalDescriptionLTE applies the LTE predicate on the "final_description" field.
func FinalDescriptionLTE(v string) predicate.Company {
	return predicate.Company(sql.FieldLTE(FieldFinalDescription, v))
}

// FinalDescriptionContains applies the Contains predicate on the "final_description" field.
func FinalDescriptionContains(v string) predicate.Company {
	return predicate.Company(sql.FieldContains(FieldFinalDescription, v))
}

// FinalDescriptionHasPrefix applies the HasPrefix predicate on the "final_description" field.
func FinalDescriptionHasPrefix(v string) predicate.Company {
	return predicate.Company(sql.FieldHasPrefix(FieldFinalDescription, v))
}

// FinalDescriptionHasSuffix applies the HasSuffix predicate on the "final_description" field.
func FinalDescriptionHasSuffix(v string) predicate.Company {
	return predicate.Company(sql.FieldHasSuffix(FieldFinalDescription, v))
}

// FinalDescriptionIsNil applies the IsNil predicate on the "final_description" field.
func FinalDescriptionIsNil() predicate.Company {
	return predicate.Company(sql.FieldIsNull(FieldFinalDescription))
}

// FinalDescriptionNotNil applies the NotNil predicate on the "final_description" field.
func FinalDescriptionNotNil() predicate.Company {
	return predicate.Company(sql.FieldNotNull(FieldFinalDescription))
}

// FinalDescriptionEqualFold applies the EqualFold predicate on the "final_description" field.
func FinalDescriptionEqualFold(v string) predicate.Company {
	return predicate.Company(sql.FieldEqualFold(FieldFinalDescription, v))
}

// FinalDescriptionContainsFold applies the ContainsFold predicate on the "final_description" field.
func FinalDescriptionContainsFold(v string) predicate.Company {
	return predicate.Company(sql.FieldContainsFold(FieldFinalDescription, v))
}

// ValuePropositionsIsNil applies the IsNil predicate on the "value_propositions" field.
func ValuePropositionsIsNil() predicate.Company {
	return predicate.Company(sql.FieldIsNull(FieldValuePropositions))
}

// ValuePropositionsNotNil applies the NotNil predicate on the "value_propositions" field.
func ValuePropositionsNotNil() predicate.Company {
	return predicate.Company(sql.FieldNotNull(FieldValuePropositions))
}

// TargetAudiencesIsNil applies the IsNil predicate on the "target_audiences" field.
func TargetAudiencesIsNil() predicate.Company {
	return predicate.Company(sql.FieldIsNull(FieldTargetAudiences))
}

// TargetAudiencesNotNil applies the NotNil predicate on the "target_audiences" field.
func TargetAudiencesNotNil() predicate.Company {
	return predicate.Company(sql.FieldNotNull(FieldTargetAudiences))
}

// CompetitorsIsNil applies the IsNil predicate on the "competitors" field.
func CompetitorsIsNil() predicate.Company {
	return predicate.Company(sql.FieldIsNull(FieldCompetitors))
}

// CompetitorsNotNil applies the NotNil predicate on the "competitors" field.
func CompetitorsNotNil() predicate.Company {
	return predicate.Company(sql.FieldNotNull(FieldCompetitors))
}

// ProductsIsNil applies the IsNil predicate on the "products" field.
func ProductsIsNil() predicate.Company {
	return predicate.Company(sql.FieldIsNull(FieldProducts))
}

// ProductsNotNil applies the NotNil predicate on the "products" field.
func ProductsNotNil() predicate.Company {
	return predicate.Company(sql.FieldNotNull(FieldProducts))
}

// PainPointsIsNil applies the IsNil predicate on the "pain_points" field.
func PainPointsIsNil() predicate.Company {
	return predicate.Company(sql.FieldIsNull(FieldPainPoints))
}

// PainPointsNotNil applies the NotNil predicate on the "pain_points" field.
func PainPointsNotNil() predicate.Company {
	return predicate.Company(sql.FieldNotNull(FieldPainPoints))
}

// GeographiesIsNil applies the IsNil predicate on the "geographies" field.
func GeographiesIsNil() predicate.Company {
	return predicate.Company(sql.FieldIsNull(FieldGeographies))
}

// GeographiesNotNil applies the NotNil predicate on the "geographies" field.
func GeographiesNotNil() predicate.Company {
	return predicate.Company(sql.FieldNotNull(FieldGeographies))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.Company {
	return predicate.Company(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.Company {
	return predicate.Company(sql.FieldNotNull(FieldMetadata))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Company {
	return predicate.Company(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Company {
	return predicate.Company(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldLTE(FieldCreatedAt, v))
}

// HasAudits applies the HasEdge predicate on the "audits" edge.
func HasAudits() predicate.Company {
	return predicate.Company(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AuditsTable, AuditsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAuditsWith applies the HasEdge predicate on the "audits" edge with a given conditions (other predicates).
func HasAuditsWith(preds ...predicate.Audit) predicate.Company {
	return predicate.Company(func(s *sql.Selector) {
		step := newAuditsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Company) predicate.Company {
	return predicate.Company(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Company) predicate.Company {
	return predicate.Company(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Company) predicate.Company {
	return predicate.Company(sql.NotPredicates(p))
}
