package fsm

import "testing"

func TestItemCanTransition(t *testing.T) {
	if !ItemCanTransition(ItemOpen, ItemPending) {
		t.Fatal("expected open -> pending to be allowed")
	}
	if !ItemCanTransition(ItemOpen, ItemInProgress) {
		t.Fatal("expected open -> in_progress to be allowed")
	}
	if !ItemCanTransition(ItemInProgress, ItemFixed) {
		t.Fatal("expected in_progress -> fixed to be allowed")
	}
	if !ItemCanTransition(ItemFixed, ItemArchived) {
		t.Fatal("expected fixed -> archived to be allowed")
	}
	if ItemCanTransition(ItemFixed, ItemOpen) {
		t.Fatal("items must not move backwards")
	}
	if ItemCanTransition(ItemArchived, ItemOpen) {
		t.Fatal("archived is terminal")
	}
}

func TestOfferCanTransition(t *testing.T) {
	if !OfferCanTransition(OfferPending, OfferAccepted) {
		t.Fatal("expected pending -> accepted to be allowed")
	}
	if !OfferCanTransition(OfferPending, OfferRejected) {
		t.Fatal("expected pending -> rejected to be allowed")
	}
	if !OfferCanTransition(OfferPending, OfferWithdrawn) {
		t.Fatal("expected pending -> withdrawn to be allowed")
	}
	if OfferCanTransition(OfferAccepted, OfferRejected) {
		t.Fatal("resolved offers are terminal")
	}
	if OfferCanTransition(OfferRejected, OfferPending) {
		t.Fatal("resolved offers must not reopen")
	}
}

func TestJobCanTransition(t *testing.T) {
	if !JobCanTransition(JobActive, JobCompleted) {
		t.Fatal("expected active -> completed to be allowed")
	}
	if !JobCanTransition(JobCompleted, JobDisputed) {
		t.Fatal("completed jobs may still be disputed")
	}
	if !JobCanTransition(JobDisputed, JobCompleted) {
		t.Fatal("disputes may resolve back to completed")
	}
	if JobCanTransition(JobVerified, JobActive) {
		t.Fatal("verified is terminal")
	}
	if JobCanTransition(JobCancelled, JobCompleted) {
		t.Fatal("cancelled is terminal")
	}
}

func TestItemAcceptsOffers(t *testing.T) {
	if !ItemAcceptsOffers(ItemOpen) || !ItemAcceptsOffers(ItemPending) {
		t.Fatal("open and pending items accept offers")
	}
	for _, status := range []string{ItemInProgress, ItemFixed, ItemUnfixable, ItemArchived} {
		if ItemAcceptsOffers(status) {
			t.Fatalf("%s items must not accept offers", status)
		}
	}
}
