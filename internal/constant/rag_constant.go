package constant

const (
	ChatMessageRoleUser  = "user"
	ChatMessageRoleModel = "model"
)

// NoDocumentsMessage is returned verbatim when a case has nothing indexed.
// No LLM call is made in that path.
const NoDocumentsMessage = "Bu dava için henüz doküman yüklenmemiş veya indekslenmemiş. Lütfen önce doküman yükleyin."

// LLMNotConfiguredMessage is the user-facing text when no Gemini/Ollama
// credential is configured.
const LLMNotConfiguredMessage = "Yapay zeka servisi yapılandırılmamış. Lütfen sistem yöneticinize başvurun."

// AnswerSystemPrompt pins the assistant to the supplied documents only.
const AnswerSystemPrompt = "Sen bir yasal asistanısın. Sadece verilen dokümanlardaki bilgilere dayanarak yanıt ver."

// AnswerPromptTemplate is filled with (context, question).
const AnswerPromptTemplate = `Aşağıdaki yasal dokümanlardan sadece verilen bilgilere dayanarak soruyu yanıtla.
Eğer sorunun cevabı dokümanlarda yoksa, "Bu bilgi yüklenen dokümanlarda bulunmamaktadır" de.

Dokümanlar:
%s

Soru: %s

Yanıt:`

// DraftSystemPrompt frames the model as a legal document drafter.
const DraftSystemPrompt = "Sen bir yasal doküman hazırlama uzmanısın. Türk hukuk sistemine uygun, profesyonel dokümanlar hazırlarsın."

// Draft prompt templates, one per template type. Filled with case fields
// and the retrieved document context.
const (
	DilekcePromptTemplate = `Aşağıdaki dava bilgilerine göre bir dilekçe taslağı hazırla:

Dava Bilgileri:
- Dava No: %s
- Müvekkil: %s
- Konu: %s
- Açıklama: %s

İlgili Doküman Bilgileri:
%s

Dilekçe taslağını Türk hukuk sistemine uygun, profesyonel bir dille hazırla.`

	SozlesmePromptTemplate = `Aşağıdaki bilgilere göre bir sözleşme taslağı hazırla:

Dava/Müşteri Bilgileri:
- Müşteri: %s
- Konu: %s
- Açıklama: %s

İlgili Doküman Bilgileri:
%s

Sözleşme taslağını Türk hukuk sistemine uygun, detaylı ve profesyonel bir dille hazırla.`

	TutanakPromptTemplate = `Aşağıdaki bilgilere göre bir tutanak taslağı hazırla:

Dava Bilgileri:
- Dava No: %s
- Müvekkil: %s
- Konu: %s
- Açıklama: %s

İlgili Doküman Bilgileri:
%s

Tutanak taslağını Türk hukuk sistemine uygun, detaylı ve profesyonel bir dille hazırla.`
)

// FieldNotSpecified substitutes empty case fields inside draft prompts.
const FieldNotSpecified = "Belirtilmemiş"
